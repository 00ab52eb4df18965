package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/pprof"
	"strconv"
	"strings"

	"github.com/sanonone/glossgraph/pkg/engine"
	"github.com/sanonone/glossgraph/pkg/loader"
	"github.com/sanonone/glossgraph/pkg/metrics"
)

// registerHTTPHandlers sets up the REST API routes.
func (s *Server) registerHTTPHandlers(mux *http.ServeMux) {
	mux.HandleFunc("/", s.router)
}

// router is the main manual router. It parses the URL and delegates to the
// right handler.
func (s *Server) router(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	// --- Debug endpoints (pprof) ---
	if strings.HasPrefix(path, "/debug/pprof") {
		switch {
		case path == "/debug/pprof/":
			pprof.Index(w, r)
		case path == "/debug/pprof/cmdline":
			pprof.Cmdline(w, r)
		case path == "/debug/pprof/profile":
			pprof.Profile(w, r)
		case path == "/debug/pprof/symbol":
			pprof.Symbol(w, r)
		case path == "/debug/pprof/trace":
			pprof.Trace(w, r)
		default:
			s.writeHTTPError(w, http.StatusNotFound, "pprof endpoint not found")
		}
		return
	}

	// --- System endpoints ---
	if path == "/system/reload" {
		s.handleReload(w, r)
		return
	}
	if taskID, ok := strings.CutPrefix(path, "/system/tasks/"); ok {
		s.handleTaskStatus(w, r, taskID)
		return
	}

	// --- Graph endpoints ---
	switch path {
	case "/terms":
		s.handleListTerms(w, r)
		return
	case "/terms/search":
		s.handleSearchTerms(w, r)
		return
	case "/relations":
		s.handleRelations(w, r)
		return
	case "/path":
		s.handleFindPath(w, r)
		return
	case "/stats":
		s.handleStats(w, r)
		return
	}

	// URLs with a parameter: /terms/{name}. r.URL.Path arrives already
	// unescaped, so everything after the prefix is the term name, slashes
	// included.
	if name, ok := strings.CutPrefix(path, "/terms/"); ok {
		s.handleGetTerm(w, r, name)
		return
	}

	s.writeHTTPError(w, http.StatusNotFound, "endpoint not found")
}

// --- Term handlers ---

func (s *Server) handleGetTerm(w http.ResponseWriter, r *http.Request, name string) {
	if r.Method != http.MethodGet {
		s.writeHTTPError(w, http.StatusMethodNotAllowed, "use GET on /terms/{name}")
		return
	}

	term, found, err := s.Engine.GetTerm(name)
	if err != nil {
		metrics.QueriesTotal.WithLabelValues("get_term", "invalid").Inc()
		s.writeHTTPError(w, statusFor(err), err.Error())
		return
	}
	if !found {
		metrics.QueriesTotal.WithLabelValues("get_term", "not_found").Inc()
		s.writeHTTPResponse(w, http.StatusNotFound, TermResponse{Found: false})
		return
	}

	metrics.QueriesTotal.WithLabelValues("get_term", "found").Inc()
	s.writeHTTPResponse(w, http.StatusOK, TermResponse{Term: &term, Found: true})
}

func (s *Server) handleListTerms(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeHTTPError(w, http.StatusMethodNotAllowed, "use GET on /terms")
		return
	}

	terms, total := s.Engine.ListAllTerms()
	metrics.QueriesTotal.WithLabelValues("list_terms", "found").Inc()
	s.writeHTTPResponse(w, http.StatusOK, AllTermsResponse{Terms: terms, TotalCount: total})
}

func (s *Server) handleSearchTerms(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeHTTPError(w, http.StatusMethodNotAllowed, "use GET on /terms/search")
		return
	}

	prefix := r.URL.Query().Get("prefix")
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		s.writeHTTPError(w, http.StatusBadRequest, err.Error())
		return
	}

	terms, total := s.Engine.SearchTerms(prefix, limit)
	metrics.QueriesTotal.WithLabelValues("search_terms", "found").Inc()
	s.writeHTTPResponse(w, http.StatusOK, AllTermsResponse{Terms: terms, TotalCount: total})
}

// --- Graph handlers ---

func (s *Server) handleRelations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeHTTPError(w, http.StatusMethodNotAllowed, "use GET on /relations")
		return
	}

	name := r.URL.Query().Get("term")
	depth, err := queryInt(r, "depth", 0)
	if err != nil {
		s.writeHTTPError(w, http.StatusBadRequest, err.Error())
		return
	}

	relations, total, err := s.Engine.ListRelations(name, depth)
	if err != nil {
		metrics.QueriesTotal.WithLabelValues("list_relations", "invalid").Inc()
		s.writeHTTPError(w, statusFor(err), err.Error())
		return
	}

	metrics.QueriesTotal.WithLabelValues("list_relations", "found").Inc()
	s.writeHTTPResponse(w, http.StatusOK, RelationsResponse{
		Term:       name,
		Depth:      depth,
		Relations:  relations,
		TotalCount: total,
	})
}

func (s *Server) handleFindPath(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeHTTPError(w, http.StatusMethodNotAllowed, "use GET on /path")
		return
	}

	q := r.URL.Query()
	maxDepth, err := queryInt(r, "max_depth", 0)
	if err != nil {
		s.writeHTTPError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := s.Engine.FindPath(q.Get("source"), q.Get("target"), maxDepth)
	if err != nil {
		metrics.QueriesTotal.WithLabelValues("find_path", "invalid").Inc()
		s.writeHTTPError(w, statusFor(err), err.Error())
		return
	}

	outcome := "not_found"
	if res.Exists {
		outcome = "found"
	}
	metrics.QueriesTotal.WithLabelValues("find_path", outcome).Inc()
	s.writeHTTPResponse(w, http.StatusOK, PathResponse{
		Source:  res.Source,
		Target:  res.Target,
		Path:    res.Path,
		Exists:  res.Exists,
		Message: res.Message,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeHTTPError(w, http.StatusMethodNotAllowed, "use GET on /stats")
		return
	}

	metrics.QueriesTotal.WithLabelValues("stats", "found").Inc()
	s.writeHTTPResponse(w, http.StatusOK, s.Engine.Stats())
}

// --- System handlers ---

// handleReload re-reads the CSV sources and swaps the graph atomically.
// The work runs in a background task: large files should not hold the
// request open, and a failed parse must leave the old graph serving.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeHTTPError(w, http.StatusMethodNotAllowed, "use POST on /system/reload")
		return
	}
	if s.reloadPaths.Terms == "" || s.reloadPaths.Links == "" {
		s.writeHTTPError(w, http.StatusConflict, "reload disabled: no CSV source paths configured")
		return
	}

	task := s.taskManager.NewTask()

	go func() {
		task.SetStatus(TaskStatusRunning)
		task.SetProgress("reading CSV sources")

		if err := s.runReload(task); err != nil {
			metrics.ReloadsTotal.WithLabelValues("failed").Inc()
			slog.Error("graph reload failed", "task_id", task.ID, "error", err)
			task.SetError(err)
			return
		}

		metrics.ReloadsTotal.WithLabelValues("ok").Inc()
		metrics.TermsTotal.Set(float64(s.Engine.TermCount()))
		metrics.RelationsTotal.Set(float64(s.Engine.RelationCount()))
		task.SetProgress(fmt.Sprintf("loaded %d terms, %d relations",
			s.Engine.TermCount(), s.Engine.RelationCount()))
		task.SetStatus(TaskStatusCompleted)
	}()

	s.writeHTTPResponse(w, http.StatusAccepted, ReloadAcceptedResponse{
		TaskID: task.ID,
		Status: string(TaskStatusStarted),
	})
}

func (s *Server) runReload(task *Task) error {
	terms, err := loader.LoadTerms(s.reloadPaths.Terms)
	if err != nil {
		return err
	}
	relations, err := loader.LoadRelations(s.reloadPaths.Links)
	if err != nil {
		return err
	}

	task.SetProgress("building snapshot")
	return s.Engine.Reload(terms, relations)
}

func (s *Server) handleTaskStatus(w http.ResponseWriter, r *http.Request, taskID string) {
	if r.Method != http.MethodGet {
		s.writeHTTPError(w, http.StatusMethodNotAllowed, "use GET on /system/tasks/{id}")
		return
	}

	task, found := s.taskManager.GetTask(taskID)
	if !found {
		s.writeHTTPError(w, http.StatusNotFound, "task not found")
		return
	}
	s.writeHTTPResponse(w, http.StatusOK, task.View())
}

// --- Helpers ---

// queryInt parses an optional integer query parameter.
func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parameter %q must be an integer", key)
	}
	return v, nil
}

func (s *Server) writeHTTPResponse(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func (s *Server) writeHTTPError(w http.ResponseWriter, statusCode int, message string) {
	s.writeHTTPResponse(w, statusCode, map[string]string{"error": message})
}

// statusFor maps engine validation errors to 400, anything else to 500.
func statusFor(err error) int {
	if errors.Is(err, engine.ErrInvalidArgument) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
