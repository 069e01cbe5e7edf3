package store

import (
	"database/sql"
	"fmt"

	"github.com/vqdung71104/student-management-sub000/internal/model"
)

// CreateStudent inserts a student and returns its id. A duplicate student
// code surfaces as a unique-constraint error (see IsDuplicate).
func (s *Store) CreateStudent(st *model.Student) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO students (student_code, student_name, email, cohort)
		VALUES (?, ?, ?, ?)
	`, st.StudentCode, st.StudentName, st.Email, st.Cohort)
	if err != nil {
		return 0, fmt.Errorf("insert student failed: %w", err)
	}
	return res.LastInsertId()
}

// GetStudent fetches one student by id.
func (s *Store) GetStudent(id int64) (*model.Student, error) {
	st := &model.Student{}
	err := s.db.QueryRow(`
		SELECT id, student_code, student_name, email, cohort, created_at
		FROM students WHERE id = ?
	`, id).Scan(&st.ID, &st.StudentCode, &st.StudentName, &st.Email, &st.Cohort, &st.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("student %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("query student failed: %w", err)
	}
	return st, nil
}

// GetStudentByCode fetches one student by its business key.
func (s *Store) GetStudentByCode(code string) (*model.Student, error) {
	st := &model.Student{}
	err := s.db.QueryRow(`
		SELECT id, student_code, student_name, email, cohort, created_at
		FROM students WHERE student_code = ?
	`, code).Scan(&st.ID, &st.StudentCode, &st.StudentName, &st.Email, &st.Cohort, &st.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("student %s not found", code)
	}
	if err != nil {
		return nil, fmt.Errorf("query student failed: %w", err)
	}
	return st, nil
}

// ListStudents returns all students ordered by code.
func (s *Store) ListStudents() ([]model.Student, error) {
	rows, err := s.db.Query(`
		SELECT id, student_code, student_name, email, cohort, created_at
		FROM students ORDER BY student_code
	`)
	if err != nil {
		return nil, fmt.Errorf("query students failed: %w", err)
	}
	defer rows.Close()

	var out []model.Student
	for rows.Next() {
		var st model.Student
		if err := rows.Scan(&st.ID, &st.StudentCode, &st.StudentName, &st.Email, &st.Cohort, &st.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan student failed: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

// UpdateStudent updates the mutable fields of a student.
func (s *Store) UpdateStudent(st *model.Student) error {
	_, err := s.db.Exec(`
		UPDATE students SET student_name = ?, email = ?, cohort = ? WHERE id = ?
	`, st.StudentName, st.Email, st.Cohort, st.ID)
	if err != nil {
		return fmt.Errorf("update student failed: %w", err)
	}
	return nil
}

// DeleteStudent removes a student by id.
func (s *Store) DeleteStudent(id int64) error {
	_, err := s.db.Exec(`DELETE FROM students WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete student failed: %w", err)
	}
	return nil
}

// CountStudents is used by the dashboard.
func (s *Store) CountStudents() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(1) FROM students`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count students failed: %w", err)
	}
	return n, nil
}
