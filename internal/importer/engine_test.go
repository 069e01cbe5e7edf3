package importer

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/vqdung71104/student-management-sub000/internal/backend"
	"github.com/vqdung71104/student-management-sub000/internal/parser"
)

type scriptedSubmitter struct {
	results []backend.Result
	calls   []string
}

func (s *scriptedSubmitter) Submit(_ context.Context, method, path string, body any) backend.Result {
	s.calls = append(s.calls, method+" "+path)
	if len(s.results) == 0 {
		return backend.Result{Status: backend.StatusOK}
	}
	res := s.results[0]
	s.results = s.results[1:]
	return res
}

func gradeRecords(n int) []parser.Record {
	records := make([]parser.Record, n)
	for i := range records {
		records[i] = parser.Record{
			parser.FieldStudentCode: fmt.Sprintf("2020%04d", i),
			parser.FieldSubjectCode: "IT3080",
			parser.FieldSemester:    "20231",
			parser.FieldLetterGrade: "A",
		}
	}
	return records
}

func TestEngine_CountsAndErrorCap(t *testing.T) {
	t.Parallel()

	// 10 records, 7 fail: success=3, error=7, preview capped at 5.
	submitter := &scriptedSubmitter{}
	for i := 0; i < 10; i++ {
		if i < 3 {
			submitter.results = append(submitter.results, backend.Result{Status: backend.StatusOK})
		} else {
			submitter.results = append(submitter.results, backend.Result{
				Status:  backend.StatusError,
				Code:    400,
				Message: fmt.Sprintf("row %d rejected", i),
			})
		}
	}

	engine := NewEngineWithSleeper(submitter, 0, func(time.Duration) {})
	outcome := engine.Run(context.Background(), GradeFlow, gradeRecords(10), nil)

	if outcome.Total != 10 || outcome.Success != 3 || outcome.Error != 7 {
		t.Fatalf("unexpected counts: %+v", outcome)
	}
	if len(outcome.Errors) != ErrorPreviewLimit {
		t.Fatalf("error preview want=%d got=%d", ErrorPreviewLimit, len(outcome.Errors))
	}
	if outcome.Errors[0].Message != "row 3 rejected" {
		t.Fatalf("unexpected first error: %+v", outcome.Errors[0])
	}
}

func TestEngine_DuplicatesAreSkipsNotErrors(t *testing.T) {
	t.Parallel()

	submitter := &scriptedSubmitter{results: []backend.Result{
		{Status: backend.StatusOK},
		{Status: backend.StatusDuplicate, Code: 409, Message: "duplicate key"},
		{Status: backend.StatusError, Code: 500, Message: "boom"},
	}}

	engine := NewEngineWithSleeper(submitter, 0, func(time.Duration) {})
	outcome := engine.Run(context.Background(), GradeFlow, gradeRecords(3), nil)

	if outcome.Success != 1 || outcome.Duplicate != 1 || outcome.Error != 1 {
		t.Fatalf("unexpected counts: %+v", outcome)
	}
	// Duplicates stay out of the error preview.
	if len(outcome.Errors) != 1 || outcome.Errors[0].Message != "boom" {
		t.Fatalf("unexpected error preview: %+v", outcome.Errors)
	}
}

func TestEngine_SequentialWithPacing(t *testing.T) {
	t.Parallel()

	submitter := &scriptedSubmitter{}
	var sleeps []time.Duration
	engine := NewEngineWithSleeper(submitter, 50*time.Millisecond, func(d time.Duration) {
		sleeps = append(sleeps, d)
	})

	engine.Run(context.Background(), GradeFlow, gradeRecords(4), nil)

	if len(submitter.calls) != 4 {
		t.Fatalf("calls want=4 got=%d", len(submitter.calls))
	}
	// Delay between requests, not after the last one.
	if len(sleeps) != 3 {
		t.Fatalf("sleeps want=3 got=%d", len(sleeps))
	}
	for _, d := range sleeps {
		if d != 50*time.Millisecond {
			t.Fatalf("unexpected pacing: %v", d)
		}
	}
}

func TestEngine_RunsToCompletionPastErrors(t *testing.T) {
	t.Parallel()

	submitter := &scriptedSubmitter{results: []backend.Result{
		{Status: backend.StatusError, Code: 500, Message: "down"},
		{Status: backend.StatusError, Code: 500, Message: "down"},
		{Status: backend.StatusOK},
	}}

	engine := NewEngineWithSleeper(submitter, 0, func(time.Duration) {})
	outcome := engine.Run(context.Background(), GradeFlow, gradeRecords(3), nil)

	if len(submitter.calls) != 3 {
		t.Fatalf("batch should always run over all rows, calls=%d", len(submitter.calls))
	}
	if outcome.Success != 1 || outcome.Error != 2 {
		t.Fatalf("unexpected counts: %+v", outcome)
	}
}
