package store

import (
	"database/sql"
	"fmt"

	"github.com/vqdung71104/student-management-sub000/internal/model"
)

// CreateSubject inserts a subject and returns its id.
func (s *Store) CreateSubject(sub *model.Subject) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO subjects (subject_code, subject_name, credits, fee, school_name)
		VALUES (?, ?, ?, ?, ?)
	`, sub.SubjectCode, sub.SubjectName, sub.Credits, sub.Fee, sub.SchoolName)
	if err != nil {
		return 0, fmt.Errorf("insert subject failed: %w", err)
	}
	return res.LastInsertId()
}

// GetSubject fetches one subject by id.
func (s *Store) GetSubject(id int64) (*model.Subject, error) {
	sub := &model.Subject{}
	err := s.db.QueryRow(`
		SELECT id, subject_code, subject_name, credits, fee, school_name, created_at
		FROM subjects WHERE id = ?
	`, id).Scan(&sub.ID, &sub.SubjectCode, &sub.SubjectName, &sub.Credits, &sub.Fee, &sub.SchoolName, &sub.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("subject %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("query subject failed: %w", err)
	}
	return sub, nil
}

// ListSubjects returns all subjects ordered by code. The importer's resolver
// seeds its run cache from this list.
func (s *Store) ListSubjects() ([]model.Subject, error) {
	rows, err := s.db.Query(`
		SELECT id, subject_code, subject_name, credits, fee, school_name, created_at
		FROM subjects ORDER BY subject_code
	`)
	if err != nil {
		return nil, fmt.Errorf("query subjects failed: %w", err)
	}
	defer rows.Close()

	var out []model.Subject
	for rows.Next() {
		var sub model.Subject
		if err := rows.Scan(&sub.ID, &sub.SubjectCode, &sub.SubjectName, &sub.Credits, &sub.Fee, &sub.SchoolName, &sub.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan subject failed: %w", err)
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

// UpdateSubject updates the mutable fields of a subject.
func (s *Store) UpdateSubject(sub *model.Subject) error {
	_, err := s.db.Exec(`
		UPDATE subjects SET subject_name = ?, credits = ?, fee = ?, school_name = ? WHERE id = ?
	`, sub.SubjectName, sub.Credits, sub.Fee, sub.SchoolName, sub.ID)
	if err != nil {
		return fmt.Errorf("update subject failed: %w", err)
	}
	return nil
}

// DeleteSubject removes a subject by id.
func (s *Store) DeleteSubject(id int64) error {
	_, err := s.db.Exec(`DELETE FROM subjects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete subject failed: %w", err)
	}
	return nil
}

// CountSubjects is used by the dashboard.
func (s *Store) CountSubjects() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(1) FROM subjects`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count subjects failed: %w", err)
	}
	return n, nil
}
