package exporter

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Sink receives translated observations. Set overwrites the current value
// of the (metric, label set) series: every update cycle is a full resync of
// gauge values, not a delta. Implementations must be safe for concurrent
// set and read, since the exposition handler gathers while a cycle writes.
type Sink interface {
	Set(metric string, labels map[string]string, value float64) error
}

// PromSink is a Sink backed by Prometheus gauge vectors, one per metric
// definition, registered on the caller's registry.
type PromSink struct {
	gauges map[string]*prometheus.GaugeVec
}

// NewPromSink creates gauge vectors for every definition of the given
// catalogs. Metric names are family-prefixed, so registering the catalogs
// of both families on one registry never collides.
func NewPromSink(reg prometheus.Registerer, catalogs ...*Catalog) *PromSink {
	factory := promauto.With(reg)
	gauges := make(map[string]*prometheus.GaugeVec)
	for _, cat := range catalogs {
		for _, def := range cat.Definitions() {
			gauges[def.Name] = factory.NewGaugeVec(prometheus.GaugeOpts{
				Name: def.Name,
				Help: def.Help,
			}, def.Labels)
		}
	}
	return &PromSink{gauges: gauges}
}

// Set records one observation. The label set must match the metric's
// declared schema exactly.
func (s *PromSink) Set(metric string, labels map[string]string, value float64) error {
	vec, ok := s.gauges[metric]
	if !ok {
		return fmt.Errorf("metric %q is not declared in any catalog", metric)
	}
	g, err := vec.GetMetricWith(prometheus.Labels(labels))
	if err != nil {
		return fmt.Errorf("metric %q labels: %w", metric, err)
	}
	g.Set(value)
	return nil
}
