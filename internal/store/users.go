package store

import (
	"database/sql"
	"fmt"

	"github.com/vqdung71104/student-management-sub000/internal/model"
)

// CreateUser inserts a portal account.
func (s *Store) CreateUser(u *model.User) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO users (email, student_code, password_hash, role, is_active)
		VALUES (?, ?, ?, ?, ?)
	`, u.Email, u.StudentCode, u.PasswordHash, u.Role, u.IsActive)
	if err != nil {
		return 0, fmt.Errorf("insert user failed: %w", err)
	}
	return res.LastInsertId()
}

// FindUserByIdentifier looks a user up by email or student code, which is
// what the login form accepts.
func (s *Store) FindUserByIdentifier(identifier string) (*model.User, error) {
	u := &model.User{}
	err := s.db.QueryRow(`
		SELECT id, email, COALESCE(student_code, ''), password_hash, role, is_active, created_at
		FROM users WHERE email = ? OR student_code = ?
	`, identifier, identifier).Scan(&u.ID, &u.Email, &u.StudentCode, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("query user failed: %w", err)
	}
	return u, nil
}

// GetUser fetches one account by id.
func (s *Store) GetUser(id int64) (*model.User, error) {
	u := &model.User{}
	err := s.db.QueryRow(`
		SELECT id, email, COALESCE(student_code, ''), password_hash, role, is_active, created_at
		FROM users WHERE id = ?
	`, id).Scan(&u.ID, &u.Email, &u.StudentCode, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("query user failed: %w", err)
	}
	return u, nil
}
