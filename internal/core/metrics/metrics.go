// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric name.
const Namespace = "freight_cost"

var (
	// CostEvaluationsTotal counts per-mode cost evaluations.
	CostEvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "evaluations_total",
			Help:      "Total number of per-mode cost evaluations",
		},
		[]string{"mode", "status"},
	)

	MatrixBuildsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "matrix_builds_total",
			Help:      "Total number of distance matrices built",
		},
	)

	MatrixBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "matrix_build_duration_seconds",
			Help:      "Distance matrix construction time in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
	)

	MatrixCacheResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "matrix_cache_total",
			Help:      "Matrix cache lookups by result",
		},
		[]string{"result"},
	)

	QuoteBatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "quote_batch_size",
			Help:      "Number of quotes per batch request",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 6),
		},
	)
)

// RecordEvaluation counts one evaluation outcome for a mode.
func RecordEvaluation(mode string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	CostEvaluationsTotal.WithLabelValues(mode, status).Inc()
}

// RecordMatrixBuild records a completed matrix build.
func RecordMatrixBuild(elapsed time.Duration) {
	MatrixBuildsTotal.Inc()
	MatrixBuildDuration.Observe(elapsed.Seconds())
}

// RecordMatrixCache records a matrix cache hit or miss.
func RecordMatrixCache(hit bool) {
	if hit {
		MatrixCacheResults.WithLabelValues("hit").Inc()
		return
	}
	MatrixCacheResults.WithLabelValues("miss").Inc()
}
