// Package engine provides the in-memory term-relation graph at the heart of
// GlossGraph.
//
// It indexes glossary terms (nodes) connected by typed, directed relations
// (edges) and answers four queries: term lookup, bounded-depth relation
// listing, bounded-depth shortest-path search, and full term enumeration.
// The graph is read-mostly: concurrent queries never block each other, and
// the only mutator is an explicit atomic Reload.
//
// Basic usage:
//
//	eng := engine.New(engine.DefaultOptions())
//	if err := eng.Load(terms, relations); err != nil {
//	    log.Fatal(err)
//	}
//	term, found, _ := eng.GetTerm("cat")
package engine

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
)

// ErrInvalidArgument marks a programming-contract violation: an empty term
// name where one is required, or a malformed load batch. Missing terms are
// never errors; they are negative results (found=false, empty sequences).
var ErrInvalidArgument = errors.New("invalid argument")

// Options configures traversal defaults and safety limits.
type Options struct {
	// DefaultRelationDepth is used when ListRelations receives maxDepth <= 0.
	// The wire schema leaves max_depth optional (zero value), so an unset
	// depth means "direct relations only". Default: 1.
	DefaultRelationDepth int

	// DefaultPathDepth is used when FindPath receives maxDepth <= 0.
	// Default: 10, matching the served API's historical behavior.
	DefaultPathDepth int

	// MaxVisits bounds the total number of edge visits a single traversal may
	// perform. Termination is already guaranteed (visited sets, bounded
	// depth), this only caps worst-case latency on dense graphs with a large
	// depth. Default: 100000.
	MaxVisits int

	// PathDirection selects how FindPath walks edges. DirectionBoth by
	// default: relatedness is symmetric even though edges are stored
	// directionally. Flip to DirectionOut for directed-only reachability
	// without touching the BFS itself.
	PathDirection Direction
}

// DefaultOptions returns the standard configuration.
func DefaultOptions() Options {
	return Options{
		DefaultRelationDepth: 1,
		DefaultPathDepth:     10,
		MaxVisits:            100_000,
		PathDirection:        DirectionBoth,
	}
}

// Engine is the in-memory graph store. All query methods are safe for
// concurrent use; a query in flight during a Reload completes against the
// snapshot it started with.
type Engine struct {
	snap atomic.Pointer[snapshot]
	opts Options

	// adminMu serializes reloads. Queries never take it.
	adminMu sync.Mutex
	reloads atomic.Int64
}

// New creates an empty Engine. Populate it with Load before serving queries;
// until then every lookup is a clean negative result.
func New(opts Options) *Engine {
	if opts.DefaultRelationDepth <= 0 {
		opts.DefaultRelationDepth = 1
	}
	if opts.DefaultPathDepth <= 0 {
		opts.DefaultPathDepth = 10
	}
	if opts.MaxVisits <= 0 {
		opts.MaxVisits = 100_000
	}
	e := &Engine{opts: opts}
	e.snap.Store(emptySnapshot())
	return e
}

// Load indexes a full batch of terms and relations, replacing whatever the
// engine held before. The new indexes are built completely off to the side
// and swapped in atomically: readers see either the old graph or the new
// one, never a mix, and a failed build leaves the old graph serving.
func (e *Engine) Load(terms []Term, relations []Relation) error {
	e.adminMu.Lock()
	defer e.adminMu.Unlock()

	next, err := buildSnapshot(terms, relations)
	if err != nil {
		return err
	}

	e.snap.Store(next)
	gen := e.reloads.Add(1)
	slog.Info("graph loaded",
		"terms", len(next.order),
		"relations", next.relCount,
		"generation", gen,
	)
	return nil
}

// Reload is Load under its operational name: rebuild from a fresh batch.
func (e *Engine) Reload(terms []Term, relations []Relation) error {
	return e.Load(terms, relations)
}

// TermCount returns the number of indexed terms.
func (e *Engine) TermCount() int {
	return len(e.snap.Load().order)
}

// RelationCount returns the number of indexed relation triples
// (after deduplication).
func (e *Engine) RelationCount() int {
	return e.snap.Load().relCount
}

// Generation returns how many times the graph has been (re)loaded.
func (e *Engine) Generation() int64 {
	return e.reloads.Load()
}
