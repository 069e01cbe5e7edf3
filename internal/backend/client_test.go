package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vqdung71104/student-management-sub000/internal/model"
)

func TestSubmit_Classification(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/created":
			w.WriteHeader(http.StatusCreated)
		case "/conflict":
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]string{"message": "duplicate key value"})
		case "/duplicate-400":
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"message": "UNIQUE constraint failed: grades"})
		case "/invalid":
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"message": "semester is required"})
		case "/broken":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("plain text failure"))
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	if res := client.Submit(ctx, http.MethodPost, "/created", map[string]any{"x": 1}); res.Status != StatusOK {
		t.Fatalf("2xx should classify as OK: %+v", res)
	}

	res := client.Submit(ctx, http.MethodPost, "/conflict", nil)
	if res.Status != StatusDuplicate {
		t.Fatalf("409 should classify as duplicate: %+v", res)
	}

	res = client.Submit(ctx, http.MethodPost, "/duplicate-400", nil)
	if res.Status != StatusDuplicate {
		t.Fatalf("duplicate-key 400 should classify as duplicate: %+v", res)
	}

	res = client.Submit(ctx, http.MethodPost, "/invalid", nil)
	if res.Status != StatusError || res.Message != "semester is required" {
		t.Fatalf("4xx should carry the extracted message: %+v", res)
	}

	res = client.Submit(ctx, http.MethodPost, "/broken", nil)
	if res.Status != StatusError || res.Message != "plain text failure" {
		t.Fatalf("non-JSON body should fall back to raw text: %+v", res)
	}
}

func TestSubmit_NetworkFailureIsError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // refuse connections

	client := NewClient(server.URL)
	res := client.Submit(context.Background(), http.MethodPost, "/anything", nil)
	if res.Status != StatusError || res.Message == "" {
		t.Fatalf("network failure should classify as error with a message: %+v", res)
	}
}

func TestListAndCreateSubjects(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/subjects" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode([]model.Subject{{ID: 1, SubjectCode: "IT3080"}})
		case http.MethodPost:
			var subject model.Subject
			json.NewDecoder(r.Body).Decode(&subject)
			subject.ID = 2
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(subject)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	subjects, err := client.ListSubjects(ctx)
	if err != nil || len(subjects) != 1 {
		t.Fatalf("list subjects failed: %v %v", subjects, err)
	}

	id, err := client.CreateSubject(ctx, &model.Subject{SubjectCode: "IT9999"})
	if err != nil {
		t.Fatalf("create subject failed: %v", err)
	}
	if id != 2 {
		t.Fatalf("created id want=2 got=%d", id)
	}
}
