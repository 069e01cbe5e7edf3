package store

import (
	"path/filepath"
	"testing"

	"github.com/vqdung71104/student-management-sub000/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "portal.db"))
	if err != nil {
		t.Fatalf("open store failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_DuplicateStudentCode(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	if _, err := s.CreateStudent(&model.Student{StudentCode: "20210001", StudentName: "Nguyễn Văn An"}); err != nil {
		t.Fatalf("create student failed: %v", err)
	}
	_, err := s.CreateStudent(&model.Student{StudentCode: "20210001", StudentName: "Nguyễn Văn An"})
	if !IsDuplicate(err) {
		t.Fatalf("want duplicate error, got %v", err)
	}
}

func TestStore_DuplicateClassPerSemester(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	subjectID, err := s.CreateSubject(&model.Subject{SubjectCode: "IT3080", SubjectName: "Cấu trúc dữ liệu"})
	if err != nil {
		t.Fatalf("create subject failed: %v", err)
	}

	class := &model.Class{ClassCode: "100001", SubjectID: subjectID, Semester: "20231"}
	if _, err := s.CreateClass(class); err != nil {
		t.Fatalf("create class failed: %v", err)
	}
	if _, err := s.CreateClass(class); !IsDuplicate(err) {
		t.Fatalf("want duplicate error, got %v", err)
	}

	// Same code in another semester is a different section.
	other := &model.Class{ClassCode: "100001", SubjectID: subjectID, Semester: "20232"}
	if _, err := s.CreateClass(other); err != nil {
		t.Fatalf("create class in other semester failed: %v", err)
	}
}

func TestStore_AssignTeacher(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	subjectID, err := s.CreateSubject(&model.Subject{SubjectCode: "IT4060", SubjectName: "Học máy"})
	if err != nil {
		t.Fatalf("create subject failed: %v", err)
	}
	id, err := s.CreateClass(&model.Class{ClassCode: "100002", SubjectID: subjectID, Semester: "20231"})
	if err != nil {
		t.Fatalf("create class failed: %v", err)
	}

	if err := s.AssignTeacher("100002", "20231", "Trần Thị Bình", "binh.tt@example.edu.vn"); err != nil {
		t.Fatalf("assign teacher failed: %v", err)
	}
	class, err := s.GetClass(id)
	if err != nil {
		t.Fatalf("get class failed: %v", err)
	}
	if class.TeacherName != "Trần Thị Bình" {
		t.Fatalf("teacher not assigned: %+v", class)
	}

	if err := s.AssignTeacher("999999", "20231", "x", ""); err == nil {
		t.Fatalf("expected error assigning to unknown class")
	}
}

func TestStore_StudentSchedule(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	subjectID, err := s.CreateSubject(&model.Subject{SubjectCode: "IT3080", SubjectName: "Cấu trúc dữ liệu"})
	if err != nil {
		t.Fatalf("create subject failed: %v", err)
	}
	if _, err := s.CreateClass(&model.Class{ClassCode: "100001", SubjectID: subjectID, Semester: "20231", DayOfWeek: "Monday"}); err != nil {
		t.Fatalf("create class failed: %v", err)
	}
	if _, err := s.CreateGrade(&model.Grade{StudentCode: "20210001", SubjectCode: "IT3080", Semester: "20231", LetterGrade: "A"}); err != nil {
		t.Fatalf("create grade failed: %v", err)
	}

	schedule, err := s.StudentSchedule("20210001", "20231")
	if err != nil {
		t.Fatalf("schedule failed: %v", err)
	}
	if len(schedule) != 1 || schedule[0].ClassCode != "100001" {
		t.Fatalf("unexpected schedule: %+v", schedule)
	}

	// No grades in the other semester, so no sections either.
	empty, err := s.StudentSchedule("20210001", "20232")
	if err != nil {
		t.Fatalf("schedule failed: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty schedule, got %+v", empty)
	}
}

func TestStore_ImportLogs(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	for _, run := range []string{"a", "b", "c"} {
		if _, err := s.CreateImportLog(&model.ImportLog{RunID: run, Flow: "grades", Filename: run + ".xlsx", Status: "completed"}); err != nil {
			t.Fatalf("create log failed: %v", err)
		}
	}

	logs, err := s.ListImportLogs(2)
	if err != nil {
		t.Fatalf("list logs failed: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("limit not applied: %+v", logs)
	}
}
