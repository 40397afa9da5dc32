// Package metrics exposes distributor activity as Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fundd"

type Metrics struct {
	registry *prometheus.Registry

	Calls        *prometheus.CounterVec
	Transfers    *prometheus.CounterVec
	LedgerHeight prometheus.Gauge
}

// New registers the distributor collectors on a dedicated registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calls_total",
			Help:      "Distributor calls by method and outcome.",
		}, []string{"method", "outcome"}),
		Transfers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transfer_instructions_total",
			Help:      "Transfer instructions emitted by claims, by asset kind.",
		}, []string{"kind"}),
		LedgerHeight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ledger_height",
			Help:      "Height of the last committed ledger state.",
		}),
	}

	m.registry.MustRegister(m.Calls, m.Transfers, m.LedgerHeight)
	return m
}

// Observe counts one call; err decides the outcome label.
func (m *Metrics) Observe(method string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.Calls.WithLabelValues(method, outcome).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
