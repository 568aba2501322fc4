package linker

import (
	"github.com/c360studio/semstreams/metric"
	"github.com/prometheus/client_golang/prometheus"
)

// linkMetrics exposes linking outcomes on the shared metrics registry,
// alongside the worker-pool metrics the batch pool registers itself.
type linkMetrics struct {
	entities prometheus.Counter
	matches  *prometheus.CounterVec
}

func newLinkMetrics(registry *metric.MetricsRegistry) *linkMetrics {
	m := &linkMetrics{
		entities: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vikb_linker_entities_total",
			Help: "Entities run through the matching strategies.",
		}),
		matches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vikb_linker_matches_total",
			Help: "Candidate matches kept after post-processing, by strategy.",
		}, []string{"method"}),
	}
	if err := registry.RegisterCounter("linker", "entities_total", m.entities); err != nil {
		return nil
	}
	if err := registry.RegisterCounterVec("linker", "matches_total", m.matches); err != nil {
		return nil
	}
	return m
}

func (m *linkMetrics) observe(matches []Match) {
	if m == nil {
		return
	}
	m.entities.Inc()
	for _, match := range matches {
		m.matches.WithLabelValues(match.Method).Inc()
	}
}
