package importer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/vqdung71104/student-management-sub000/internal/model"
)

type fakeLogStore struct {
	logs []model.ImportLog
}

func (f *fakeLogStore) CreateImportLog(log *model.ImportLog) (int64, error) {
	f.logs = append(f.logs, *log)
	return int64(len(f.logs)), nil
}

// writeTimetableWorkbook builds a small timetable export: two title rows,
// the header, two data rows and one blank row.
func writeTimetableWorkbook(t *testing.T) string {
	t.Helper()

	file := excelize.NewFile()
	rows := [][]any{
		{"TRƯỜNG ĐẠI HỌC BÁCH KHOA"},
		{"Thời khóa biểu kỳ 20231"},
		{"Kỳ", "Mã_lớp", "Mã_HP", "Tên_HP", "Thứ", "Thời_gian", "Tuần"},
		{"20231", "100001", "IT3080", "Cấu trúc dữ liệu", "2", "0700-0850", "1-3,5"},
		{"", "", "", "", "", "", ""},
		{"20231", "100002", "IT4060", "Học máy", "4", "0900-1050", "1-8"},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := file.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("write row failed: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "timetable.xlsx")
	if err := file.SaveAs(path); err != nil {
		t.Fatalf("save workbook failed: %v", err)
	}
	return path
}

func waitCompleted(t *testing.T, run *Run) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if run.State() == StateCompleted {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("run never completed, state=%s", run.State())
}

func TestCoordinator_TimetableRoundTrip(t *testing.T) {
	t.Parallel()

	var classBodies []map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/subjects", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode([]model.Subject{{ID: 7, SubjectCode: "IT3080"}})
		case http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(model.Subject{ID: 8})
		}
	})
	mux.HandleFunc("/api/v1/classes", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		classBodies = append(classBodies, body)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(payload{"id": len(classBodies)})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	logs := &fakeLogStore{}
	cfg := testImportConfig()
	cfg.BackendBaseURL = server.URL
	cfg.SubmitDelayMs = 0
	coordinator := NewCoordinator(logs, cfg)

	run, err := coordinator.StartRun("timetable", writeTimetableWorkbook(t), "timetable.xlsx", "")
	if err != nil {
		t.Fatalf("start run failed: %v", err)
	}
	if run.State() != StatePreviewReady {
		t.Fatalf("state want=%s got=%s", StatePreviewReady, run.State())
	}
	if run.RecordCount() != 2 {
		t.Fatalf("records want=2 got=%d", run.RecordCount())
	}

	preview := run.Preview()
	if got := preview[0].Str("day_of_week_converted"); got != "Monday" {
		t.Fatalf("preview day want=Monday got=%q", got)
	}

	if _, err := coordinator.Confirm(run.ID); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	waitCompleted(t, run)

	outcome := run.Outcome()
	if outcome.Total != 2 || outcome.Success != 2 || outcome.Error != 0 {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}

	// Known subject resolves from cache, unknown one through creation.
	if classBodies[0]["subject_id"].(float64) != 7 {
		t.Fatalf("first class should use the prefetched subject id: %v", classBodies[0])
	}
	if classBodies[1]["subject_id"].(float64) != 8 {
		t.Fatalf("second class should use the created subject id: %v", classBodies[1])
	}
	if classBodies[0]["study_weeks"] != "1,2,3,5" {
		t.Fatalf("unexpected study_weeks: %v", classBodies[0]["study_weeks"])
	}

	if len(logs.logs) != 1 || logs.logs[0].SuccessRows != 2 {
		t.Fatalf("import log not persisted: %+v", logs.logs)
	}
}

func TestCoordinator_ConfirmRequiresPreviewState(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(payload{})
	}))
	defer server.Close()

	cfg := testImportConfig()
	cfg.BackendBaseURL = server.URL
	cfg.SubmitDelayMs = 0
	coordinator := NewCoordinator(&fakeLogStore{}, cfg)

	run, err := coordinator.StartRun("timetable", writeTimetableWorkbook(t), "timetable.xlsx", "")
	if err != nil {
		t.Fatalf("start run failed: %v", err)
	}
	if _, err := coordinator.Confirm(run.ID); err != nil {
		t.Fatalf("first confirm failed: %v", err)
	}
	waitCompleted(t, run)

	// A completed run cannot be confirmed again.
	if _, err := coordinator.Confirm(run.ID); err == nil {
		t.Fatalf("expected error confirming a completed run")
	}
}

func TestCoordinator_StructuralErrorAbortsBeforeSubmission(t *testing.T) {
	t.Parallel()

	file := excelize.NewFile()
	row := []any{"không phải", "tiêu đề"}
	file.SetSheetRow("Sheet1", "A1", &row)
	path := filepath.Join(t.TempDir(), "bad.xlsx")
	if err := file.SaveAs(path); err != nil {
		t.Fatalf("save workbook failed: %v", err)
	}

	coordinator := NewCoordinator(&fakeLogStore{}, testImportConfig())
	if _, err := coordinator.StartRun("timetable", path, "bad.xlsx", ""); err == nil {
		t.Fatalf("expected header-not-found error")
	}
}

// payload mirrors the handler response shape.
type payload map[string]any
