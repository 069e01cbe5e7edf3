package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/vqdung71104/student-management-sub000/internal/model"
)

const classColumns = `id, class_code, attached_code, subject_id, semester,
	day_of_week, study_time_start, study_time_end, study_weeks, classroom,
	max_capacity, registered_count, class_type, status, teacher_name,
	teacher_email, created_at`

// qualify prefixes every column in a comma list with a table alias.
func qualify(columns, alias string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}

func scanClass(row interface{ Scan(...any) error }) (*model.Class, error) {
	c := &model.Class{}
	err := row.Scan(&c.ID, &c.ClassCode, &c.AttachedCode, &c.SubjectID, &c.Semester,
		&c.DayOfWeek, &c.StudyTimeStart, &c.StudyTimeEnd, &c.StudyWeeks, &c.Classroom,
		&c.MaxCapacity, &c.RegisteredCount, &c.ClassType, &c.Status, &c.TeacherName,
		&c.TeacherEmail, &c.CreatedAt)
	return c, err
}

// CreateClass inserts a class section and returns its id. (class_code,
// semester) is unique, so re-importing the same timetable reports duplicates.
func (s *Store) CreateClass(c *model.Class) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO classes (class_code, attached_code, subject_id, semester,
			day_of_week, study_time_start, study_time_end, study_weeks, classroom,
			max_capacity, registered_count, class_type, status, teacher_name, teacher_email)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, c.ClassCode, c.AttachedCode, c.SubjectID, c.Semester,
		c.DayOfWeek, c.StudyTimeStart, c.StudyTimeEnd, c.StudyWeeks, c.Classroom,
		c.MaxCapacity, c.RegisteredCount, c.ClassType, c.Status, c.TeacherName, c.TeacherEmail)
	if err != nil {
		return 0, fmt.Errorf("insert class failed: %w", err)
	}
	return res.LastInsertId()
}

// GetClass fetches one class by id.
func (s *Store) GetClass(id int64) (*model.Class, error) {
	c, err := scanClass(s.db.QueryRow(`SELECT `+classColumns+` FROM classes WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("class %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("query class failed: %w", err)
	}
	return c, nil
}

// ListClasses returns the classes of a semester, or all when semester is
// empty.
func (s *Store) ListClasses(semester string) ([]model.Class, error) {
	query := `SELECT ` + classColumns + ` FROM classes`
	args := []any{}
	if semester != "" {
		query += ` WHERE semester = ?`
		args = append(args, semester)
	}
	query += ` ORDER BY class_code`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query classes failed: %w", err)
	}
	defer rows.Close()

	var out []model.Class
	for rows.Next() {
		c, err := scanClass(rows)
		if err != nil {
			return nil, fmt.Errorf("scan class failed: %w", err)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// AssignTeacher sets the teacher columns of a class, keyed by class code and
// semester as the assignment export identifies sections.
func (s *Store) AssignTeacher(classCode, semester, teacherName, teacherEmail string) error {
	res, err := s.db.Exec(`
		UPDATE classes SET teacher_name = ?, teacher_email = ?
		WHERE class_code = ? AND semester = ?
	`, teacherName, teacherEmail, classCode, semester)
	if err != nil {
		return fmt.Errorf("assign teacher failed: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("assign teacher failed: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("class %s not found in semester %s", classCode, semester)
	}
	return nil
}

// UpdateClass updates the schedule fields of a class.
func (s *Store) UpdateClass(c *model.Class) error {
	_, err := s.db.Exec(`
		UPDATE classes SET day_of_week = ?, study_time_start = ?, study_time_end = ?,
			study_weeks = ?, classroom = ?, max_capacity = ?, registered_count = ?,
			class_type = ?, status = ?
		WHERE id = ?
	`, c.DayOfWeek, c.StudyTimeStart, c.StudyTimeEnd, c.StudyWeeks, c.Classroom,
		c.MaxCapacity, c.RegisteredCount, c.ClassType, c.Status, c.ID)
	if err != nil {
		return fmt.Errorf("update class failed: %w", err)
	}
	return nil
}

// DeleteClass removes a class by id.
func (s *Store) DeleteClass(id int64) error {
	_, err := s.db.Exec(`DELETE FROM classes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete class failed: %w", err)
	}
	return nil
}

// CountClasses is used by the dashboard.
func (s *Store) CountClasses() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(1) FROM classes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count classes failed: %w", err)
	}
	return n, nil
}

// StudentSchedule joins a student's graded subjects to the class sections of
// a semester, which is what the schedule view renders.
func (s *Store) StudentSchedule(studentCode, semester string) ([]model.Class, error) {
	rows, err := s.db.Query(`
		SELECT `+qualify(classColumns, "c")+`
		FROM classes c
		JOIN subjects sub ON sub.id = c.subject_id
		JOIN grades g ON g.subject_code = sub.subject_code AND g.semester = c.semester
		WHERE g.student_code = ? AND c.semester = ?
		ORDER BY c.day_of_week, c.study_time_start
	`, studentCode, semester)
	if err != nil {
		return nil, fmt.Errorf("query schedule failed: %w", err)
	}
	defer rows.Close()

	var out []model.Class
	for rows.Next() {
		c, err := scanClass(rows)
		if err != nil {
			return nil, fmt.Errorf("scan schedule failed: %w", err)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}
