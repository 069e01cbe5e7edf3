package importer

import "github.com/vqdung71104/student-management-sub000/internal/backend"

// ErrorPreviewLimit caps how many per-row error messages the outcome keeps
// for display. The counters stay accurate past the cap.
const ErrorPreviewLimit = 5

// RowError is one captured submission failure: the row's business key and
// the backend's message.
type RowError struct {
	Key     string `json:"key"`
	Message string `json:"message"`
}

// Outcome accumulates per-row results over one run. Partial completion is a
// normal terminal state, not a failure.
type Outcome struct {
	Total     int        `json:"total"`
	Success   int        `json:"success"`
	Duplicate int        `json:"duplicate"`
	Error     int        `json:"error"`
	Errors    []RowError `json:"errors"`
}

func (o *Outcome) record(key string, res backend.Result) {
	o.Total++
	switch res.Status {
	case backend.StatusOK:
		o.Success++
	case backend.StatusDuplicate:
		// Duplicate-key rejections are skips, not errors, and stay out of
		// the error preview.
		o.Duplicate++
	default:
		o.Error++
		if len(o.Errors) < ErrorPreviewLimit {
			o.Errors = append(o.Errors, RowError{Key: key, Message: res.Message})
		}
	}
}
