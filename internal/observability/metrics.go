// Package observability provides Prometheus metrics for the evaluation
// pipeline and the response cache.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheRequests counts read-path outcomes: "hit", "miss", or "error"
	// (errors degrade to misses but are counted separately).
	CacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profiletool_cache_requests_total",
		Help: "Response cache read results by outcome.",
	}, []string{"result"})

	// CacheWrites counts write-path outcomes: "ok", "failed", or "skipped"
	// (skipped when the store is disabled).
	CacheWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profiletool_cache_writes_total",
		Help: "Response cache write results by outcome.",
	}, []string{"result"})

	// GenerationAttempts counts narrative generation calls by outcome
	// ("ok" or "failed"), summed across retries.
	GenerationAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profiletool_generation_attempts_total",
		Help: "Narrative generation attempts by outcome.",
	}, []string{"result"})

	// GenerationDuration observes end-to-end generation latency, the
	// dominant latency source in the evaluation pipeline.
	GenerationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "profiletool_generation_duration_seconds",
		Help:    "Narrative generation latency in seconds.",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
	})

	// Evaluations counts completed evaluation requests by outcome
	// ("cached", "generated", or "failed").
	Evaluations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profiletool_evaluations_total",
		Help: "Evaluation requests by outcome.",
	}, []string{"outcome"})
)
