package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/vqdung71104/student-management-sub000/internal/backend"
	"github.com/vqdung71104/student-management-sub000/internal/config"
	"github.com/vqdung71104/student-management-sub000/internal/model"
	"github.com/vqdung71104/student-management-sub000/internal/parser"
)

// Coordinator drives the two-phase import interaction: StartRun parses an
// uploaded workbook into a previewable run, Confirm submits it.
type Coordinator struct {
	registry *Registry
	logs     ImportLogStore
	cfg      config.ImportConfig
}

// ImportLogStore is the slice of persistence the coordinator needs.
type ImportLogStore interface {
	CreateImportLog(log *model.ImportLog) (int64, error)
}

// NewCoordinator creates a coordinator with an empty run registry.
func NewCoordinator(logs ImportLogStore, cfg config.ImportConfig) *Coordinator {
	return &Coordinator{
		registry: NewRegistry(),
		logs:     logs,
		cfg:      cfg,
	}
}

// ReadFirstSheet decodes the first worksheet of a workbook into raw rows.
// Everything past this call treats the sheet as opaque rows of cells.
func ReadFirstSheet(filePath string) (parser.RawSheet, error) {
	file, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

// StartRun parses the uploaded file for a flow and registers a previewable
// run. Structural errors (header not found, no valid rows) abort here,
// before anything is submitted.
func (c *Coordinator) StartRun(flowName, filePath, filename, token string) (*Run, error) {
	flow, err := FlowByName(flowName)
	if err != nil {
		return nil, err
	}

	run := &Run{
		ID:        uuid.NewString(),
		Flow:      flow,
		Filename:  filename,
		Token:     token,
		StartedAt: time.Now(),
		state:     StateParsing,
	}

	sheet, err := ReadFirstSheet(filePath)
	if err != nil {
		return nil, err
	}

	records, err := parser.ParseSheet(sheet, flow.Dialect)
	if err != nil {
		return nil, err
	}

	run.records = records
	run.setState(StatePreviewReady)
	c.registry.Add(run)

	logrus.WithFields(logrus.Fields{
		"run":      run.ID,
		"flow":     flow.Name,
		"filename": filename,
		"records":  len(records),
	}).Info("import run parsed")

	return run, nil
}

// Get returns a registered run.
func (c *Coordinator) Get(runID string) (*Run, error) {
	return c.registry.Get(runID)
}

// Confirm transitions a previewed run to Submitting and runs the batch in
// the background. Submission deliberately ignores the caller's request
// context: closing the client stops observation of progress, not the
// already-confirmed run.
func (c *Coordinator) Confirm(runID string) (*Run, error) {
	run, err := c.registry.Get(runID)
	if err != nil {
		return nil, err
	}

	run.mu.Lock()
	if run.state != StatePreviewReady {
		state := run.state
		run.mu.Unlock()
		return nil, fmt.Errorf("run %s is %s, expected %s", runID, state, StatePreviewReady)
	}
	run.state = StateSubmitting
	run.mu.Unlock()

	go c.submit(run)

	return run, nil
}

func (c *Coordinator) submit(run *Run) {
	ctx := context.Background()

	client := backend.NewClient(c.cfg.BackendBaseURL)
	client.SetToken(run.Token)

	var resolver *SubjectResolver
	if run.Flow.NeedsResolver {
		resolver = NewSubjectResolver(client, c.cfg)
		if err := resolver.Prime(ctx); err != nil {
			// An empty cache just means every subject resolves through
			// creation; the run still proceeds.
			logrus.WithField("run", run.ID).WithError(err).Warn("subject prefetch failed")
		}
	}

	engine := NewEngine(client, time.Duration(c.cfg.SubmitDelayMs)*time.Millisecond)
	outcome := engine.Run(ctx, run.Flow, run.records, resolver)

	run.mu.Lock()
	run.outcome = outcome
	run.state = StateCompleted
	run.mu.Unlock()

	if _, err := c.logs.CreateImportLog(&model.ImportLog{
		RunID:         run.ID,
		Flow:          run.Flow.Name,
		Filename:      run.Filename,
		TotalRows:     outcome.Total,
		SuccessRows:   outcome.Success,
		DuplicateRows: outcome.Duplicate,
		ErrorRows:     outcome.Error,
		Status:        "completed",
	}); err != nil {
		logrus.WithField("run", run.ID).WithError(err).Warn("failed to persist import log")
	}

	logrus.WithFields(logrus.Fields{
		"run":       run.ID,
		"flow":      run.Flow.Name,
		"success":   outcome.Success,
		"duplicate": outcome.Duplicate,
		"error":     outcome.Error,
	}).Info("import run completed")
}
