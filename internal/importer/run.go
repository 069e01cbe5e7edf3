package importer

import (
	"fmt"
	"sync"
	"time"

	"github.com/vqdung71104/student-management-sub000/internal/parser"
)

// State is a run's position in its lifecycle. Submitting is entered only
// after the user confirms the preview.
type State string

const (
	StateIdle         State = "idle"
	StateParsing      State = "parsing"
	StatePreviewReady State = "preview_ready"
	StateSubmitting   State = "submitting"
	StateCompleted    State = "completed"
)

// PreviewLimit is how many normalized records the preview shows for
// confirmation.
const PreviewLimit = 10

// Run is one parse-preview-confirm-submit cycle for a single uploaded
// spreadsheet. Each run owns its records, resolver cache and outcome; runs
// share nothing with each other.
type Run struct {
	ID        string
	Flow      Flow
	Filename  string
	Token     string
	StartedAt time.Time

	mu      sync.Mutex
	state   State
	records []parser.Record
	outcome *Outcome
}

// State returns the run's current state.
func (r *Run) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Run) setState(s State) {
	r.mu.Lock()
	r.state = s
	r.mu.Unlock()
}

// Preview returns the first records for user confirmation.
func (r *Run) Preview() []parser.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.records) <= PreviewLimit {
		return r.records
	}
	return r.records[:PreviewLimit]
}

// Outcome returns the accumulated outcome, nil until submission finishes.
func (r *Run) Outcome() *Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.outcome
}

// RecordCount returns how many records passed parsing.
func (r *Run) RecordCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// Registry holds in-flight runs between the preview and confirm requests.
// The mutex only guards handler access; runs themselves are independent.
type Registry struct {
	mu   sync.Mutex
	runs map[string]*Run
}

// NewRegistry creates an empty run registry.
func NewRegistry() *Registry {
	return &Registry{runs: make(map[string]*Run)}
}

// Add registers a run under its id.
func (reg *Registry) Add(run *Run) {
	reg.mu.Lock()
	reg.runs[run.ID] = run
	reg.mu.Unlock()
}

// Get looks a run up by id.
func (reg *Registry) Get(id string) (*Run, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	run, ok := reg.runs[id]
	if !ok {
		return nil, fmt.Errorf("import run %s not found", id)
	}
	return run, nil
}
