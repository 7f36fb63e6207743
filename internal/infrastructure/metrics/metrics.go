package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	registry *prometheus.Registry

	UpstreamRequestsTotal   *prometheus.CounterVec
	UpstreamRequestDuration prometheus.Histogram
	RatesDecoded            prometheus.Gauge
	RunFailuresTotal        *prometheus.CounterVec
}

// NewMetrics registers the collectors on a private registry so that a run only
// reports its own numbers.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		UpstreamRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hnb_upstream_requests_total",
				Help: "Total number of requests sent to the HNB rate API",
			},
			[]string{"code"},
		),

		UpstreamRequestDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "hnb_upstream_request_duration_seconds",
				Help:    "HNB rate API request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),

		RatesDecoded: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "hnb_rates_decoded",
				Help: "Number of exchange rate records decoded by the last run",
			},
		),

		RunFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hnb_run_failures_total",
				Help: "Total number of failed runs by pipeline stage",
			},
			[]string{"stage"},
		),
	}
}

// Registry exposes the collectors for gathering
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile dumps the registry in the node_exporter textfile collector format
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
