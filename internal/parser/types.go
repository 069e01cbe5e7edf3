package parser

// RawSheet is the decoded spreadsheet: rows of untyped cell text, exactly as
// the decoder emits them. Read-only input.
type RawSheet [][]string

// HeaderMap maps a zero-based column index to a canonical field name.
// Built once per import run, never mutated afterwards.
type HeaderMap map[int]string

// Record is one normalized data row: canonical field name to typed value
// (string, int or []int week numbers).
type Record map[string]any

// FieldRule maps a source-header fragment to a canonical field name.
// Matching is substring containment; the first rule that matches wins.
type FieldRule struct {
	Fragment string
	Field    string
}

// Dialect describes one of the spreadsheet layouts exported by the academic
// system: which tokens identify its header row, how its columns map to
// canonical fields, and which fields a row must carry to survive filtering.
type Dialect struct {
	Name         string
	HeaderTokens []string
	Fields       []FieldRule
	Mandatory    []string
	IntFields    []string
}

// WithMandatory returns a copy of the dialect with a different mandatory set.
// Flows that share a sheet layout but key on different columns use this.
func (d Dialect) WithMandatory(fields ...string) Dialect {
	d.Mandatory = fields
	return d
}

// Canonical field names shared by the dialects and the submission flows.
const (
	FieldSemester         = "semester"
	FieldClassCode        = "class_code"
	FieldAttachedCode     = "attached_class_code"
	FieldSubjectCode      = "subject_code"
	FieldSubjectName      = "subject_name"
	FieldSubjectNameEn    = "subject_name_en"
	FieldDayOfWeek        = "day_of_week"
	FieldDayConverted     = "day_of_week_converted"
	FieldStudyTime        = "study_time"
	FieldStudyTimeStart   = "study_time_start"
	FieldStudyTimeEnd     = "study_time_end"
	FieldStudyWeeks       = "study_weeks"
	FieldStudentCode      = "student_code"
	FieldStudentName      = "student_name"
	FieldLetterGrade      = "letter_grade"
	FieldTeacherName      = "teacher_name"
	FieldTeacherEmail     = "teacher_email"
)

// TimetableDialect matches the full timetable export. Order matters: longer
// fragments shadow their prefixes (Mã_lớp_kèm before Mã_lớp, Tên_HP_Tiếng_Anh
// before Tên_HP).
var TimetableDialect = Dialect{
	Name:         "timetable",
	HeaderTokens: []string{"Kỳ", "Mã_lớp", "Mã_HP", "Tên_HP"},
	Fields: []FieldRule{
		{"Mã_lớp_kèm", FieldAttachedCode},
		{"Mã_lớp", FieldClassCode},
		{"Tên_HP_Tiếng_Anh", FieldSubjectNameEn},
		{"Tên_HP", FieldSubjectName},
		{"Mã_HP", FieldSubjectCode},
		{"Kỳ", FieldSemester},
		{"Trường_Viện_Khoa", "school_name"},
		{"Viện_quản_lý", "managing_school"},
		{"Khối_lượng", "credit_info"},
		{"Số_TC", "credits"},
		{"Buổi_số", "session_no"},
		{"Thứ", FieldDayOfWeek},
		{"Thời_gian", FieldStudyTime},
		{"Bắt_đầu", "start_period"},
		{"Kết_thúc", "end_period"},
		{"Kíp", "shift"},
		{"Tuần", FieldStudyWeeks},
		{"Phòng", "classroom"},
		{"Cần_TN", "needs_lab"},
		{"Số_lượng_đăng_ký", "registered_count"},
		{"Số_lượng_max", "max_capacity"},
		{"Trạng_thái", "status"},
		{"Loại_lớp", "class_type"},
		{"Đợt_mở", "open_batch"},
		{"Mã_QL", "management_code"},
		{"Hình_thức_dạy", "teaching_method"},
		{"Giáo_viên", FieldTeacherName},
		{"Email_GV", FieldTeacherEmail},
		{"Ghi_chú", "note"},
	},
	Mandatory: []string{FieldSemester, FieldClassCode, FieldSubjectCode, FieldSubjectName},
	IntFields: []string{"session_no", "credits", "registered_count", "max_capacity"},
}

// GradeDialect matches the grade export. The same sheet also feeds the bulk
// student flow, which overrides the mandatory set.
var GradeDialect = Dialect{
	Name:         "grade",
	HeaderTokens: []string{"Kỳ", "MSSV", "Mã_HP", "Điểm_chữ"},
	Fields: []FieldRule{
		{"Kỳ", FieldSemester},
		{"MSSV", FieldStudentCode},
		{"Họ_tên", FieldStudentName},
		{"Mã_HP", FieldSubjectCode},
		{"Điểm_chữ", FieldLetterGrade},
	},
	Mandatory: []string{FieldSemester, FieldSubjectCode, FieldLetterGrade},
}
