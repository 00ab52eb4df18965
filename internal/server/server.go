package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sanonone/glossgraph/pkg/engine"
)

// Server holds the HTTP interface and the underlying graph Engine.
type Server struct {
	Engine *engine.Engine

	httpServer *http.Server

	taskManager *TaskManager
	reloadPaths ReloadPaths
	authToken   string
}

// ReloadPaths tells the reload endpoint where to re-read the CSV sources
// from. Empty paths disable the endpoint.
type ReloadPaths struct {
	Terms string
	Links string
}

// NewServer initializes the HTTP server using an existing Engine.
// The Engine must already hold its initial graph before requests arrive.
func NewServer(eng *engine.Engine, httpAddr string, reload ReloadPaths, authToken string) (*Server, error) {
	if eng == nil {
		return nil, fmt.Errorf("engine must not be nil")
	}

	s := &Server{
		Engine:      eng,
		taskManager: NewTaskManager(),
		reloadPaths: reload,
		authToken:   authToken,
	}

	mux := http.NewServeMux()
	s.registerHTTPHandlers(mux)

	// Chain middlewares: Recovery -> Logging -> Auth -> Mux
	// Order matters! Recovery must be outer-most to catch everything.

	var handler http.Handler = mux

	// 1. Auth (Inner)
	handler = s.authMiddleware(handler)

	// 2. Logging (Middle) - Logs duration and status
	handler = s.LoggingMiddleware(handler)

	// 3. Recovery (Outer) - Catches panics
	handler = s.RecoveryMiddleware(handler)

	// Health and metrics bypass auth and logging, probes poll them.
	rootMux := http.NewServeMux()
	rootMux.HandleFunc("GET /healthz", s.handleHealthz)
	rootMux.Handle("GET /metrics", promhttp.Handler())
	rootMux.Handle("/", handler)
	s.httpServer = &http.Server{
		Addr:    httpAddr,
		Handler: rootMux,
	}

	return s, nil
}

// Handler exposes the full middleware-wrapped handler, mainly for tests
// that mount the API on an httptest server.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run starts the HTTP server and blocks until Shutdown or a listener error.
func (s *Server) Run() error {
	slog.Info("HTTP server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server startup failed: %w", err)
	}
	return nil
}

// Shutdown stops the HTTP server, waiting up to 5 seconds for in-flight
// requests to drain.
func (s *Server) Shutdown() {
	slog.Info("starting graceful shutdown of HTTP server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}
}

// handleHealthz reports liveness plus the current snapshot size, so probes
// can tell an empty server from a loaded one.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeHTTPResponse(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"terms":      s.Engine.TermCount(),
		"relations":  s.Engine.RelationCount(),
		"generation": s.Engine.Generation(),
	})
}
