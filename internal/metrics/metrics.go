// Package metrics exposes Prometheus instrumentation for the check worker.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Check outcomes.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusInvalid   = "invalid"
	StatusRequeued  = "requeued"
)

// Recorder holds the worker's collectors on its own registry.
type Recorder struct {
	registry    *prometheus.Registry
	checks      *prometheus.CounterVec
	extractions *prometheus.CounterVec
	scores      prometheus.Histogram
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "atschecker_checks_total",
			Help: "Resume checks processed, by outcome.",
		}, []string{"status"}),
		extractions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "atschecker_extractions_total",
			Help: "Text extractions, by the path that produced the text.",
		}, []string{"source"}),
		scores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "atschecker_score",
			Help:    "Distribution of resume scores.",
			Buckets: prometheus.LinearBuckets(10, 10, 10),
		}),
	}
	r.registry.MustRegister(r.checks, r.extractions, r.scores)
	return r
}

func (r *Recorder) CheckDone(status string) {
	r.checks.WithLabelValues(status).Inc()
}

// Scored records a successful check's extraction source and score.
func (r *Recorder) Scored(source string, score int) {
	r.extractions.WithLabelValues(source).Inc()
	r.scores.Observe(float64(score))
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
