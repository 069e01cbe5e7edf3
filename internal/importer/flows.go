package importer

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/vqdung71104/student-management-sub000/internal/parser"
)

// Request is one prepared submission: the endpoint and the JSON body, whose
// keys are exactly the canonical field names (plus synthesized defaults for
// resolver-created references).
type Request struct {
	Method string
	Path   string
	Body   map[string]any
}

// Flow describes one of the upload call-sites: which dialect parses its
// sheet, how a record becomes a request, and whether it needs the subject
// resolver.
type Flow struct {
	Name          string
	Dialect       parser.Dialect
	NeedsResolver bool
	RowKey        func(parser.Record) string
	Build         func(ctx context.Context, r parser.Record, resolver *SubjectResolver) Request
}

// The four flows. Timetable and teacher assignment read the timetable
// export; grades and bulk students read the grade export, keyed on different
// mandatory columns.
var (
	TimetableFlow = Flow{
		Name:          "timetable",
		Dialect:       parser.TimetableDialect,
		NeedsResolver: true,
		RowKey:        classRowKey,
		Build: func(ctx context.Context, r parser.Record, resolver *SubjectResolver) Request {
			subjectID := resolver.Resolve(ctx, r.Str(parser.FieldSubjectCode), r.Str(parser.FieldSubjectName))
			return Request{
				Method: http.MethodPost,
				Path:   "/api/v1/classes",
				Body: map[string]any{
					"class_code":          r.Str(parser.FieldClassCode),
					"attached_class_code": r.Str(parser.FieldAttachedCode),
					"subject_id":          subjectID,
					"semester":            r.Str(parser.FieldSemester),
					"day_of_week":         r.Str(parser.FieldDayConverted),
					"study_time_start":    r.Str(parser.FieldStudyTimeStart),
					"study_time_end":      r.Str(parser.FieldStudyTimeEnd),
					"study_weeks":         joinWeeks(r.Weeks()),
					"classroom":           r.Str("classroom"),
					"max_capacity":        r.Int("max_capacity"),
					"registered_count":    r.Int("registered_count"),
					"class_type":          r.Str("class_type"),
					"status":              r.Str("status"),
				},
			}
		},
	}

	TeacherAssignmentFlow = Flow{
		Name:    "teacher_assignment",
		Dialect: parser.TimetableDialect.WithMandatory(parser.FieldSemester, parser.FieldClassCode, parser.FieldTeacherName),
		RowKey:  classRowKey,
		Build: func(ctx context.Context, r parser.Record, _ *SubjectResolver) Request {
			return Request{
				Method: http.MethodPut,
				Path:   "/api/v1/classes/assign",
				Body: map[string]any{
					"class_code":    r.Str(parser.FieldClassCode),
					"semester":      r.Str(parser.FieldSemester),
					"teacher_name":  r.Str(parser.FieldTeacherName),
					"teacher_email": r.Str(parser.FieldTeacherEmail),
				},
			}
		},
	}

	GradeFlow = Flow{
		Name:    "grades",
		Dialect: parser.GradeDialect,
		RowKey: func(r parser.Record) string {
			return r.Str(parser.FieldStudentCode) + "/" + r.Str(parser.FieldSubjectCode)
		},
		Build: func(ctx context.Context, r parser.Record, _ *SubjectResolver) Request {
			return Request{
				Method: http.MethodPost,
				Path:   "/api/v1/grades",
				Body: map[string]any{
					"student_code": r.Str(parser.FieldStudentCode),
					"subject_code": r.Str(parser.FieldSubjectCode),
					"semester":     r.Str(parser.FieldSemester),
					"letter_grade": r.Str(parser.FieldLetterGrade),
				},
			}
		},
	}

	StudentFlow = Flow{
		Name:    "students",
		Dialect: parser.GradeDialect.WithMandatory(parser.FieldStudentCode, parser.FieldStudentName),
		RowKey: func(r parser.Record) string {
			return r.Str(parser.FieldStudentCode)
		},
		Build: func(ctx context.Context, r parser.Record, _ *SubjectResolver) Request {
			return Request{
				Method: http.MethodPost,
				Path:   "/api/v1/students",
				Body: map[string]any{
					"student_code": r.Str(parser.FieldStudentCode),
					"student_name": r.Str(parser.FieldStudentName),
				},
			}
		},
	}
)

// FlowByName resolves an upload endpoint's flow parameter.
func FlowByName(name string) (Flow, error) {
	switch name {
	case TimetableFlow.Name:
		return TimetableFlow, nil
	case TeacherAssignmentFlow.Name:
		return TeacherAssignmentFlow, nil
	case GradeFlow.Name:
		return GradeFlow, nil
	case StudentFlow.Name:
		return StudentFlow, nil
	}
	return Flow{}, fmt.Errorf("unknown import flow %q", name)
}

func classRowKey(r parser.Record) string {
	return r.Str(parser.FieldClassCode) + "/" + r.Str(parser.FieldSubjectCode)
}

func joinWeeks(weeks []int) string {
	parts := make([]string, len(weeks))
	for i, w := range weeks {
		parts[i] = strconv.Itoa(w)
	}
	return strings.Join(parts, ",")
}
