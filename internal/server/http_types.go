package server

import (
	"github.com/sanonone/glossgraph/pkg/engine"
)

// TermResponse is the body for single-term lookups. A miss is not an HTTP
// error: found=false with a 404 status and an empty term.
type TermResponse struct {
	Term  *engine.Term `json:"term,omitempty"`
	Found bool         `json:"found"`
}

// AllTermsResponse lists every term in insertion order.
type AllTermsResponse struct {
	Terms      []engine.Term `json:"terms"`
	TotalCount int           `json:"total_count"`
}

// RelationsResponse is the body for neighborhood expansion queries.
type RelationsResponse struct {
	Term       string            `json:"term"`
	Depth      int               `json:"depth"`
	Relations  []engine.Relation `json:"relations"`
	TotalCount int               `json:"total_count"`
}

// PathResponse mirrors engine.PathResult for the /path endpoint.
type PathResponse struct {
	Source  string   `json:"source"`
	Target  string   `json:"target"`
	Path    []string `json:"path"`
	Exists  bool     `json:"path_exists"`
	Message string   `json:"message"`
}

// ReloadAcceptedResponse is returned by POST /system/reload: the reload runs
// in the background, the task ID is used to poll its outcome.
type ReloadAcceptedResponse struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}
