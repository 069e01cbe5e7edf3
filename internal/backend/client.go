// Package backend is the HTTP client for the record-persistence API. The
// import pipeline only ever talks to the backend through this contract, so
// the engine stays indifferent to whether the target is this process's own
// API or a remote deployment.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vqdung71104/student-management-sub000/internal/model"
)

// Status classifies one submission's HTTP-level outcome.
type Status int

const (
	StatusOK Status = iota
	StatusDuplicate
	StatusError
)

// Result is the classified outcome of one record submission.
type Result struct {
	Status  Status
	Code    int
	Message string
}

// Submitter is the surface the batch submission engine depends on.
type Submitter interface {
	Submit(ctx context.Context, method, path string, body any) Result
}

// Client is the production Submitter plus the reference-data reads the
// dependency resolver needs.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken sets the bearer token attached to every request.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

// Submit sends one record and classifies the response: 2xx is success, a
// duplicate-key rejection is a duplicate, anything else (4xx, 5xx, network
// failure) is an error with the body's message extracted when available.
func (c *Client) Submit(ctx context.Context, method, path string, body any) Result {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return Result{Status: StatusError, Message: err.Error()}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Network-level failure is treated the same as a 4xx.
		return Result{Status: StatusError, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return Result{Status: StatusOK, Code: resp.StatusCode}
	}

	message := extractMessage(resp.Body)
	if isDuplicateMessage(resp.StatusCode, message) {
		return Result{Status: StatusDuplicate, Code: resp.StatusCode, Message: message}
	}
	return Result{Status: StatusError, Code: resp.StatusCode, Message: message}
}

// extractMessage pulls the "message" field out of an error body, falling
// back to the raw text.
func extractMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(data) == 0 {
		return ""
	}
	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}
	return strings.TrimSpace(string(data))
}

// isDuplicateMessage recognizes a duplicate-key rejection. These count as
// skips, not errors, in the import outcome.
func isDuplicateMessage(code int, message string) bool {
	if code == http.StatusConflict {
		return true
	}
	lower := strings.ToLower(message)
	return strings.Contains(lower, "duplicate key") ||
		strings.Contains(lower, "unique constraint")
}

// ListSubjects bulk-fetches the subjects once per run to seed the resolver's
// reference cache.
func (c *Client) ListSubjects(ctx context.Context) ([]model.Subject, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/v1/subjects", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list subjects failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list subjects failed: status %d", resp.StatusCode)
	}

	var subjects []model.Subject
	if err := json.NewDecoder(resp.Body).Decode(&subjects); err != nil {
		return nil, fmt.Errorf("decode subjects failed: %w", err)
	}
	return subjects, nil
}

// CreateSubject creates a subject and returns the backend-assigned id. The
// resolver uses this when a referenced subject code is unknown.
func (c *Client) CreateSubject(ctx context.Context, subject *model.Subject) (int64, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/v1/subjects", subject)
	if err != nil {
		return 0, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("create subject failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("create subject failed: status %d: %s", resp.StatusCode, extractMessage(resp.Body))
	}

	var created model.Subject
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return 0, fmt.Errorf("decode created subject failed: %w", err)
	}
	return created.ID, nil
}
