package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Define global variables for metrics.
// We use 'promauto' which automatically registers metrics without complex initialization.

var (
	// HTTP Requests Total (Counter)
	// Counts how many requests arrive, labeled by method, path, and status code.
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "glossgraph_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP Request Duration (Histogram)
	// Measures server response time. All queries run against an in-memory
	// snapshot, so the buckets skew toward the sub-millisecond range.
	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "glossgraph_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		},
		[]string{"method", "path"},
	)

	// Graph Queries (Counter)
	// One increment per engine query, labeled by operation and outcome
	// ("found", "not_found", "invalid").
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "glossgraph_queries_total",
			Help: "Total number of graph queries served",
		},
		[]string{"op", "outcome"},
	)

	// Term Count (Gauge)
	// Tracks the size of the currently served snapshot. Updated on every
	// successful load or reload.
	TermsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "glossgraph_terms_total",
			Help: "Number of terms in the current graph snapshot",
		},
	)

	// Relation Count (Gauge)
	RelationsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "glossgraph_relations_total",
			Help: "Number of relations in the current graph snapshot",
		},
	)

	// Reloads (Counter), labeled "ok" / "failed".
	ReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "glossgraph_reloads_total",
			Help: "Total number of graph reload attempts",
		},
		[]string{"status"},
	)
)
