package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the engine's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	TransfersTotal   *prometheus.CounterVec
	ConversionsTotal *prometheus.CounterVec
	FeesCollected    *prometheus.CounterVec
	BalanceGauge     *prometheus.GaugeVec
	RateRefreshes    prometheus.Counter
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	m := &Metrics{
		registry: reg,
		TransfersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "voltx",
			Name:      "transfers_total",
			Help:      "Outbound transfers by kind and terminal status.",
		}, []string{"kind", "status"}),
		ConversionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "voltx",
			Name:      "conversions_total",
			Help:      "BTC to local-currency conversions by terminal status.",
		}, []string{"status"}),
		FeesCollected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "voltx",
			Name:      "fees_collected_total",
			Help:      "Completed fee-collection records by fee type.",
		}, []string{"fee_type"}),
		BalanceGauge: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "voltx",
			Name:      "wallet_balance",
			Help:      "Current wallet balance per currency.",
		}, []string{"currency"}),
		RateRefreshes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voltx",
			Name:      "rate_refreshes_total",
			Help:      "Exchange-rate snapshots fetched from the provider.",
		}),
	}

	reg.MustRegister(
		m.TransfersTotal,
		m.ConversionsTotal,
		m.FeesCollected,
		m.BalanceGauge,
		m.RateRefreshes,
	)
	return m
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
