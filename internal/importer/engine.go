package importer

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vqdung71104/student-management-sub000/internal/backend"
	"github.com/vqdung71104/student-management-sub000/internal/parser"
)

// Engine submits normalized records one at a time, strictly in source order.
// Sequential submission preserves the backend's ordering assumptions: a
// class row must not race the subject the resolver created two rows earlier.
type Engine struct {
	submitter backend.Submitter
	delay     time.Duration
	sleep     func(time.Duration)
}

// NewEngine creates an engine pacing requests by delay. Tests replace the
// sleeper with a no-op via NewEngineWithSleeper.
func NewEngine(submitter backend.Submitter, delay time.Duration) *Engine {
	return NewEngineWithSleeper(submitter, delay, time.Sleep)
}

// NewEngineWithSleeper creates an engine with an injectable pacing strategy.
func NewEngineWithSleeper(submitter backend.Submitter, delay time.Duration, sleep func(time.Duration)) *Engine {
	return &Engine{submitter: submitter, delay: delay, sleep: sleep}
}

// Run submits every record and returns the accumulated outcome. Records
// arriving here have already passed the mandatory-field gate; the engine only
// interprets network-level outcomes, and per-row failures never abort the
// run.
func (e *Engine) Run(ctx context.Context, flow Flow, records []parser.Record, resolver *SubjectResolver) *Outcome {
	outcome := &Outcome{}

	for i, record := range records {
		if i > 0 && e.delay > 0 {
			e.sleep(e.delay)
		}

		req := flow.Build(ctx, record, resolver)
		res := e.submitter.Submit(ctx, req.Method, req.Path, req.Body)
		outcome.record(flow.RowKey(record), res)

		if res.Status == backend.StatusError {
			logrus.WithFields(logrus.Fields{
				"flow": flow.Name,
				"row":  flow.RowKey(record),
				"code": res.Code,
			}).Debug(res.Message)
		}
	}

	return outcome
}
