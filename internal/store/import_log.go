package store

import (
	"fmt"

	"github.com/vqdung71104/student-management-sub000/internal/model"
)

// CreateImportLog records a completed import run.
func (s *Store) CreateImportLog(log *model.ImportLog) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO import_logs (run_id, flow, filename, total_rows, success_rows,
			duplicate_rows, error_rows, status, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, log.RunID, log.Flow, log.Filename, log.TotalRows, log.SuccessRows,
		log.DuplicateRows, log.ErrorRows, log.Status, log.ErrorMessage)
	if err != nil {
		return 0, fmt.Errorf("insert import log failed: %w", err)
	}
	return res.LastInsertId()
}

// ListImportLogs returns the most recent runs, newest first.
func (s *Store) ListImportLogs(limit int) ([]model.ImportLog, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
		SELECT id, run_id, flow, filename, total_rows, success_rows,
			duplicate_rows, error_rows, status, error_message, created_at
		FROM import_logs ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query import logs failed: %w", err)
	}
	defer rows.Close()

	var out []model.ImportLog
	for rows.Next() {
		var log model.ImportLog
		if err := rows.Scan(&log.ID, &log.RunID, &log.Flow, &log.Filename, &log.TotalRows,
			&log.SuccessRows, &log.DuplicateRows, &log.ErrorRows, &log.Status,
			&log.ErrorMessage, &log.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan import log failed: %w", err)
		}
		out = append(out, log)
	}
	return out, rows.Err()
}
