package importer

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/vqdung71104/student-management-sub000/internal/config"
	"github.com/vqdung71104/student-management-sub000/internal/model"
)

// SubjectDirectory is the slice of the backend API the resolver needs.
type SubjectDirectory interface {
	ListSubjects(ctx context.Context) ([]model.Subject, error)
	CreateSubject(ctx context.Context, subject *model.Subject) (int64, error)
}

// SubjectResolver maps subject codes to backend ids within one import run.
// The cache is owned by the run: it is seeded by one bulk fetch and grows as
// the run creates subjects, and nothing survives past the run.
type SubjectResolver struct {
	directory SubjectDirectory
	cache     map[string]int64
	cfg       config.ImportConfig
}

// NewSubjectResolver creates a resolver with an empty run-scoped cache.
func NewSubjectResolver(directory SubjectDirectory, cfg config.ImportConfig) *SubjectResolver {
	return &SubjectResolver{
		directory: directory,
		cache:     make(map[string]int64),
		cfg:       cfg,
	}
}

// Prime seeds the cache with every existing subject. Called once at the
// start of a run, before any row is submitted.
func (r *SubjectResolver) Prime(ctx context.Context) error {
	subjects, err := r.directory.ListSubjects(ctx)
	if err != nil {
		return err
	}
	for _, subject := range subjects {
		r.cache[subject.SubjectCode] = subject.ID
	}
	return nil
}

// Resolve returns the subject id for a code, creating the subject with
// placeholder defaults when it is unknown. Creation failure degrades to the
// configured default id so one unresolved dependency never aborts the batch;
// the row is still submitted and any backend validation error is captured in
// the outcome.
func (r *SubjectResolver) Resolve(ctx context.Context, code, name string) int64 {
	if id, ok := r.cache[code]; ok {
		return id
	}

	id, err := r.directory.CreateSubject(ctx, &model.Subject{
		SubjectCode: code,
		SubjectName: name,
		Credits:     r.cfg.DefaultCredits,
		Fee:         r.cfg.DefaultFee,
		SchoolName:  r.cfg.DefaultSchool,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"subject_code": code,
			"fallback_id":  r.cfg.DefaultSubjectID,
		}).WithError(err).Warn("subject creation failed, using default id")
		return r.cfg.DefaultSubjectID
	}

	// Cache the new id so later rows referencing the same subject reuse it
	// instead of creating duplicates within the run.
	r.cache[code] = id
	return id
}
