// Package metrics exposes store and validation counters in the Prometheus
// text format.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/diegoclair/shift-roster/internal/store"
)

const namespace = "shift_roster"

// Metrics owns a private registry so tests and multiple instances never
// collide on the global one.
type Metrics struct {
	registry   *prometheus.Registry
	dispatches *prometheus.CounterVec
	rejections *prometheus.CounterVec
	revision   prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		dispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatch_total",
			Help:      "State-changing store dispatches by action.",
		}, []string{"action"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_rejections_total",
			Help:      "Service operations rejected by validation.",
		}, []string{"operation"}),
		revision: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "state_revision",
			Help:      "Current store revision.",
		}),
	}

	m.registry.MustRegister(
		m.dispatches,
		m.rejections,
		m.revision,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ValidationRejected implements contract.Metrics.
func (m *Metrics) ValidationRejected(operation string) {
	m.rejections.WithLabelValues(operation).Inc()
}

// ObserveEvent is a store.Listener.
func (m *Metrics) ObserveEvent(ev store.Event) {
	m.dispatches.WithLabelValues(ev.Action).Inc()
	m.revision.Set(float64(ev.Revision))
}

// Handler serves the registry at /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
