package store

import (
	"fmt"

	"github.com/vqdung71104/student-management-sub000/internal/model"
)

// CreateGrade inserts a grade entry. (student_code, subject_code, semester)
// is unique, so re-importing a grade sheet reports duplicates.
func (s *Store) CreateGrade(g *model.Grade) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO grades (student_code, subject_code, semester, letter_grade)
		VALUES (?, ?, ?, ?)
	`, g.StudentCode, g.SubjectCode, g.Semester, g.LetterGrade)
	if err != nil {
		return 0, fmt.Errorf("insert grade failed: %w", err)
	}
	return res.LastInsertId()
}

// ListGradesByStudent returns a student's grades, newest semester first.
func (s *Store) ListGradesByStudent(studentCode string) ([]model.Grade, error) {
	rows, err := s.db.Query(`
		SELECT id, student_code, subject_code, semester, letter_grade, created_at
		FROM grades WHERE student_code = ?
		ORDER BY semester DESC, subject_code
	`, studentCode)
	if err != nil {
		return nil, fmt.Errorf("query grades failed: %w", err)
	}
	defer rows.Close()

	var out []model.Grade
	for rows.Next() {
		var g model.Grade
		if err := rows.Scan(&g.ID, &g.StudentCode, &g.SubjectCode, &g.Semester, &g.LetterGrade, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan grade failed: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// UpdateGrade changes the letter grade of an entry.
func (s *Store) UpdateGrade(id int64, letterGrade string) error {
	_, err := s.db.Exec(`UPDATE grades SET letter_grade = ? WHERE id = ?`, letterGrade, id)
	if err != nil {
		return fmt.Errorf("update grade failed: %w", err)
	}
	return nil
}

// DeleteGrade removes a grade entry by id.
func (s *Store) DeleteGrade(id int64) error {
	_, err := s.db.Exec(`DELETE FROM grades WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete grade failed: %w", err)
	}
	return nil
}

// CountGrades is used by the dashboard.
func (s *Store) CountGrades() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(1) FROM grades`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count grades failed: %w", err)
	}
	return n, nil
}
