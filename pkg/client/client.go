// Package client provides a Go client for the GlossGraph HTTP API.
//
// It offers a type-safe way to perform all major operations, including:
//   - Term lookups (Get, ListAll, Search).
//   - Graph queries (Relations, FindPath, Stats).
//   - System administration (Reload, Task Status).
//
// The client handles HTTP communication, JSON serialization/deserialization, and
// standardized error handling.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// --- Custom Errors ---

// APIError represents an error returned by the GlossGraph API (status >= 400).
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// --- JSON Response Structs ---

// Term models a single glossary entry.
type Term struct {
	Name       string `json:"name"`
	Definition string `json:"definition"`
}

// Relation models a typed edge between two terms.
type Relation struct {
	Source string `json:"source_term"`
	Target string `json:"target_term"`
	Type   string `json:"relation_type"`
}

// termResponse models the response for single-term lookups.
type termResponse struct {
	Term  *Term `json:"term"`
	Found bool  `json:"found"`
}

// termsResponse models list and search responses.
type termsResponse struct {
	Terms      []Term `json:"terms"`
	TotalCount int    `json:"total_count"`
}

// relationsResponse models the /relations response.
type relationsResponse struct {
	Relations  []Relation `json:"relations"`
	TotalCount int        `json:"total_count"`
}

// PathResult models the /path response.
type PathResult struct {
	Source  string   `json:"source"`
	Target  string   `json:"target"`
	Path    []string `json:"path"`
	Exists  bool     `json:"path_exists"`
	Message string   `json:"message"`
}

// TermDegree pairs a term with its degree, used in Stats.
type TermDegree struct {
	Name   string `json:"name"`
	Degree int    `json:"degree"`
}

// GraphStats models the /stats response.
type GraphStats struct {
	Terms         int            `json:"terms"`
	Relations     int            `json:"relations"`
	RelationTypes map[string]int `json:"relation_types"`
	TopDegree     []TermDegree   `json:"top_degree"`
	MeanDegree    float64        `json:"mean_degree"`
	MaxDegree     int            `json:"max_degree"`
	Components    int            `json:"components"`
	Isolated      []string       `json:"isolated"`
}

// reloadAccepted models the POST /system/reload response.
type reloadAccepted struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}

// Task represents an asynchronous operation on the GlossGraph server.
type Task struct {
	ID              string `json:"id"`
	Status          string `json:"status"`
	ProgressMessage string `json:"progress_message,omitempty"`
	Error           string `json:"error,omitempty"`

	client *Client // Reference to the client for polling.
}

// --- Client ---

// Client is the Go client for interacting with GlossGraph.
type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
}

// New creates a new GlossGraph client. An empty authToken disables the
// Authorization header.
func New(host string, port int, authToken string) *Client {
	return &Client{
		baseURL:    fmt.Sprintf("http://%s:%d", host, port),
		authToken:  authToken,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// jsonRequest is a helper method to execute all requests to the API.
// It handles JSON serialization, HTTP calls, and error management.
func (c *Client) jsonRequest(method, endpoint string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal JSON payload: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("connection error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil // For 204 responses.
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		if json.Unmarshal(respBody, &errResp) == nil && errResp["error"] != "" {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: errResp["error"]}
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	return respBody, nil
}

// --- Term Methods ---

// GetTerm looks up a term by exact name. A miss returns (nil, false, nil):
// the server's 404 carries found=false, not an error payload.
func (c *Client) GetTerm(name string) (*Term, bool, error) {
	respBody, err := c.jsonRequest(http.MethodGet, "/terms/"+url.PathEscape(name), nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, false, nil
		}
		return nil, false, err
	}

	var resp termResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, false, fmt.Errorf("invalid JSON response for GetTerm: %w", err)
	}
	return resp.Term, resp.Found, nil
}

// ListAllTerms returns every term in the glossary.
func (c *Client) ListAllTerms() ([]Term, error) {
	respBody, err := c.jsonRequest(http.MethodGet, "/terms", nil)
	if err != nil {
		return nil, err
	}
	var resp termsResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("invalid JSON response for ListAllTerms: %w", err)
	}
	return resp.Terms, nil
}

// SearchTerms returns terms whose name starts with prefix. limit <= 0 means
// no limit.
func (c *Client) SearchTerms(prefix string, limit int) ([]Term, error) {
	q := url.Values{}
	q.Set("prefix", prefix)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	respBody, err := c.jsonRequest(http.MethodGet, "/terms/search?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	var resp termsResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("invalid JSON response for SearchTerms: %w", err)
	}
	return resp.Terms, nil
}

// --- Graph Methods ---

// ListRelations expands the relation neighborhood of a term. depth <= 0 uses
// the server default (1).
func (c *Client) ListRelations(term string, depth int) ([]Relation, error) {
	q := url.Values{}
	q.Set("term", term)
	if depth > 0 {
		q.Set("depth", strconv.Itoa(depth))
	}

	respBody, err := c.jsonRequest(http.MethodGet, "/relations?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	var resp relationsResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("invalid JSON response for ListRelations: %w", err)
	}
	return resp.Relations, nil
}

// FindPath searches for the shortest relation chain between two terms.
// maxDepth <= 0 uses the server default (10). A missing path is not an
// error: check PathResult.Exists and Message.
func (c *Client) FindPath(source, target string, maxDepth int) (*PathResult, error) {
	q := url.Values{}
	q.Set("source", source)
	q.Set("target", target)
	if maxDepth > 0 {
		q.Set("max_depth", strconv.Itoa(maxDepth))
	}

	respBody, err := c.jsonRequest(http.MethodGet, "/path?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	var resp PathResult
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("invalid JSON response for FindPath: %w", err)
	}
	return &resp, nil
}

// Stats returns a summary of the loaded graph.
func (c *Client) Stats() (*GraphStats, error) {
	respBody, err := c.jsonRequest(http.MethodGet, "/stats", nil)
	if err != nil {
		return nil, err
	}
	var resp GraphStats
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("invalid JSON response for Stats: %w", err)
	}
	return &resp, nil
}

// --- System Methods ---

// Reload asks the server to re-read its CSV sources and returns a Task to
// poll for the outcome.
func (c *Client) Reload() (*Task, error) {
	respBody, err := c.jsonRequest(http.MethodPost, "/system/reload", nil)
	if err != nil {
		return nil, err
	}

	var accepted reloadAccepted
	if err := json.Unmarshal(respBody, &accepted); err != nil {
		return nil, fmt.Errorf("invalid JSON response for Reload: %w", err)
	}
	return &Task{ID: accepted.TaskID, Status: accepted.Status, client: c}, nil
}

// GetTaskStatus retrieves the current state of an asynchronous task.
func (c *Client) GetTaskStatus(taskID string) (*Task, error) {
	respBody, err := c.jsonRequest(http.MethodGet, "/system/tasks/"+taskID, nil)
	if err != nil {
		return nil, err
	}

	var task Task
	if err := json.Unmarshal(respBody, &task); err != nil {
		return nil, fmt.Errorf("invalid JSON response for GetTaskStatus: %w", err)
	}
	task.client = c
	return &task, nil
}

// Refresh updates the task's status by querying the server.
func (t *Task) Refresh() error {
	if t.client == nil {
		return fmt.Errorf("client is not associated with the task")
	}
	updatedTask, err := t.client.GetTaskStatus(t.ID)
	if err != nil {
		return err
	}
	t.Status = updatedTask.Status
	t.ProgressMessage = updatedTask.ProgressMessage
	t.Error = updatedTask.Error
	return nil
}

// Wait blocks until the task is completed, checking its status at regular intervals.
func (t *Task) Wait(interval, timeout time.Duration) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-timer.C:
			return fmt.Errorf("timeout exceeded while waiting for task %s", t.ID)
		case <-ticker.C:
			if err := t.Refresh(); err != nil {
				return err
			}
			switch t.Status {
			case "completed":
				return nil
			case "failed":
				return fmt.Errorf("task %s failed with error: %s", t.ID, t.Error)
			case "running", "started":
				// Continue waiting.
			default:
				return fmt.Errorf("unknown task status: %s", t.Status)
			}
		}
	}
}
