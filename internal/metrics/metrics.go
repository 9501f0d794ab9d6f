// Package metrics defines the exporter's own Prometheus metrics.
// All metrics use the "kea_exporter_" prefix; the translated Kea metrics
// live in the exporter package's sink instead.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "kea_exporter"

// Metrics holds the exporter's self-observability instruments. Built on a
// caller-supplied registry so tests get a fresh set.
type Metrics struct {
	// UptimeSeconds reports seconds since the exporter started.
	UptimeSeconds prometheus.GaugeFunc

	// MonitoredTargets is the number of configured control sockets.
	MonitoredTargets prometheus.Gauge

	// ScrapesTotal counts completed update cycles.
	ScrapesTotal prometheus.Counter

	// ScrapeErrors counts per-target scrape failures.
	ScrapeErrors *prometheus.CounterVec
}

// New registers the exporter metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	start := time.Now()

	return &Metrics{
		UptimeSeconds: factory.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "uptime_seconds",
			Help:      "Seconds since the exporter started.",
		}, func() float64 {
			return time.Since(start).Seconds()
		}),
		MonitoredTargets: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "monitored_targets",
			Help:      "Number of configured Kea control sockets.",
		}),
		ScrapesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scrapes_total",
			Help:      "Total update cycles run.",
		}),
		ScrapeErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scrape_errors_total",
			Help:      "Total per-target scrape failures.",
		}, []string{"target"}),
	}
}
