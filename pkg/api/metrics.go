package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// serverMetrics tracks lint traffic on a private registry so tests can
// create servers without double-registration panics.
type serverMetrics struct {
	registry *prometheus.Registry

	lintRequests *prometheus.CounterVec
	findings     *prometheus.CounterVec
	lintDuration prometheus.Histogram
	cacheHits    prometheus.Counter
	cacheMisses  prometheus.Counter
}

func newServerMetrics() *serverMetrics {
	m := &serverMetrics{
		registry: prometheus.NewRegistry(),

		lintRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "mxlint",
				Subsystem: "server",
				Name:      "lint_requests_total",
				Help:      "Total number of lint requests by outcome",
			},
			[]string{"outcome"},
		),

		findings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "mxlint",
				Subsystem: "server",
				Name:      "findings_total",
				Help:      "Total number of findings produced by severity",
			},
			[]string{"severity"},
		),

		lintDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "mxlint",
				Subsystem: "server",
				Name:      "lint_duration_seconds",
				Help:      "Duration of lint runs in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),

		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mxlint",
			Subsystem: "server",
			Name:      "cache_hits_total",
			Help:      "Lint requests answered from the result cache",
		}),

		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mxlint",
			Subsystem: "server",
			Name:      "cache_misses_total",
			Help:      "Lint requests that required a fresh run",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		m.lintRequests,
		m.findings,
		m.lintDuration,
		m.cacheHits,
		m.cacheMisses,
	)

	return m
}

// handler serves the registry in Prometheus exposition format.
func (m *serverMetrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
