package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "nlplab"

// Metrics holds the server's prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry
	analyses *prometheus.CounterVec
	empty    *prometheus.CounterVec
	errors   *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	rejected prometheus.Counter
}

// NewMetrics registers the collectors on reg, along with the Go and process
// collectors.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: reg,
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Completed analyses by operation.",
		}, []string{"op"}),
		empty: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "empty_results_total",
			Help:      "Analyses that found nothing, by operation.",
		}, []string{"op"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Rejected or failed analyses by operation and reason.",
		}, []string{"op", "reason"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Analysis latency, simulated delay included.",
			Buckets:   []float64{0.0005, 0.005, 0.05, 0.25, 0.5, 1, 1.5, 2.5},
		}, []string{"op"}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter.",
		}),
	}
	reg.MustRegister(
		m.analyses, m.empty, m.errors, m.latency, m.rejected,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) observe(op string, d time.Duration, empty bool) {
	m.analyses.WithLabelValues(op).Inc()
	m.latency.WithLabelValues(op).Observe(d.Seconds())
	if empty {
		m.empty.WithLabelValues(op).Inc()
	}
}

func (m *Metrics) observeError(op, reason string) {
	if op == "" {
		op = "none"
	}
	m.errors.WithLabelValues(op, reason).Inc()
}
