package importer

import (
	"context"
	"fmt"
	"testing"

	"github.com/vqdung71104/student-management-sub000/internal/config"
	"github.com/vqdung71104/student-management-sub000/internal/model"
)

type fakeDirectory struct {
	existing   []model.Subject
	nextID     int64
	createErr  error
	creates    int
	lastCreate *model.Subject
}

func (d *fakeDirectory) ListSubjects(context.Context) ([]model.Subject, error) {
	return d.existing, nil
}

func (d *fakeDirectory) CreateSubject(_ context.Context, subject *model.Subject) (int64, error) {
	d.creates++
	d.lastCreate = subject
	if d.createErr != nil {
		return 0, d.createErr
	}
	d.nextID++
	return d.nextID, nil
}

func testImportConfig() config.ImportConfig {
	return config.ImportConfig{
		DefaultSubjectID: 1,
		DefaultCredits:   3,
		DefaultFee:       0,
		DefaultSchool:    "SOICT",
	}
}

func TestResolver_KnownSubjectUsesCache(t *testing.T) {
	t.Parallel()

	directory := &fakeDirectory{existing: []model.Subject{
		{ID: 42, SubjectCode: "IT3080"},
	}}
	resolver := NewSubjectResolver(directory, testImportConfig())
	if err := resolver.Prime(context.Background()); err != nil {
		t.Fatalf("prime failed: %v", err)
	}

	if id := resolver.Resolve(context.Background(), "IT3080", "Mạng máy tính"); id != 42 {
		t.Fatalf("id want=42 got=%d", id)
	}
	if directory.creates != 0 {
		t.Fatalf("known subject should not trigger creation")
	}
}

func TestResolver_UnknownSubjectCreatedOnce(t *testing.T) {
	t.Parallel()

	directory := &fakeDirectory{nextID: 100}
	resolver := NewSubjectResolver(directory, testImportConfig())
	if err := resolver.Prime(context.Background()); err != nil {
		t.Fatalf("prime failed: %v", err)
	}

	first := resolver.Resolve(context.Background(), "IT9999", "Môn mới")
	second := resolver.Resolve(context.Background(), "IT9999", "Môn mới")

	if directory.creates != 1 {
		t.Fatalf("creation requests want=1 got=%d", directory.creates)
	}
	if first != 101 || second != 101 {
		t.Fatalf("both lookups should yield the created id, got %d and %d", first, second)
	}
	if directory.lastCreate.Credits != 3 || directory.lastCreate.SchoolName != "SOICT" {
		t.Fatalf("created subject should carry placeholder defaults: %+v", directory.lastCreate)
	}
}

func TestResolver_CreationFailureFallsBackToDefault(t *testing.T) {
	t.Parallel()

	directory := &fakeDirectory{createErr: fmt.Errorf("backend rejected")}
	resolver := NewSubjectResolver(directory, testImportConfig())

	if id := resolver.Resolve(context.Background(), "IT0000", "x"); id != 1 {
		t.Fatalf("fallback id want=1 got=%d", id)
	}
	// The failure is not cached: a later row retries creation.
	if id := resolver.Resolve(context.Background(), "IT0000", "x"); id != 1 {
		t.Fatalf("fallback id want=1 got=%d", id)
	}
	if directory.creates != 2 {
		t.Fatalf("failed creation should not be cached, creates=%d", directory.creates)
	}
}
