package model

import "time"

// User is a portal account. Students authenticate with their student code,
// staff with email.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	StudentCode  string    `json:"student_code,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// Roles used by the authorization middleware.
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// Student mirrors the student record of the academic system.
type Student struct {
	ID          int64     `json:"id"`
	StudentCode string    `json:"student_code"`
	StudentName string    `json:"student_name"`
	Email       string    `json:"email,omitempty"`
	Cohort      string    `json:"cohort,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Subject is a course unit, keyed to the outside world by its subject code.
type Subject struct {
	ID          int64     `json:"id"`
	SubjectCode string    `json:"subject_code"`
	SubjectName string    `json:"subject_name"`
	Credits     int       `json:"credits"`
	Fee         int       `json:"fee"`
	SchoolName  string    `json:"school_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Class is one scheduled section of a subject in a semester. StudyWeeks is
// kept as the normalized comma list ("1,2,3,5").
type Class struct {
	ID              int64     `json:"id"`
	ClassCode       string    `json:"class_code"`
	AttachedCode    string    `json:"attached_class_code,omitempty"`
	SubjectID       int64     `json:"subject_id"`
	Semester        string    `json:"semester"`
	DayOfWeek       string    `json:"day_of_week,omitempty"`
	StudyTimeStart  string    `json:"study_time_start,omitempty"`
	StudyTimeEnd    string    `json:"study_time_end,omitempty"`
	StudyWeeks      string    `json:"study_weeks,omitempty"`
	Classroom       string    `json:"classroom,omitempty"`
	MaxCapacity     int       `json:"max_capacity,omitempty"`
	RegisteredCount int       `json:"registered_count,omitempty"`
	ClassType       string    `json:"class_type,omitempty"`
	Status          string    `json:"status,omitempty"`
	TeacherName     string    `json:"teacher_name,omitempty"`
	TeacherEmail    string    `json:"teacher_email,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// Grade is one letter-grade entry for a student in a subject and semester.
type Grade struct {
	ID          int64     `json:"id"`
	StudentCode string    `json:"student_code"`
	SubjectCode string    `json:"subject_code"`
	Semester    string    `json:"semester"`
	LetterGrade string    `json:"letter_grade"`
	CreatedAt   time.Time `json:"created_at"`
}

// ImportLog is the persisted record of one completed import run.
type ImportLog struct {
	ID            int64     `json:"id"`
	RunID         string    `json:"run_id"`
	Flow          string    `json:"flow"`
	Filename      string    `json:"filename"`
	TotalRows     int       `json:"total_rows"`
	SuccessRows   int       `json:"success_rows"`
	DuplicateRows int       `json:"duplicate_rows"`
	ErrorRows     int       `json:"error_rows"`
	Status        string    `json:"status"`
	ErrorMessage  string    `json:"error_message,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
