package exporter

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/kea-exporter/kea-exporter/internal/metrics"
)

// Translator orchestrates one update cycle per monitored instance: it
// refreshes the configuration snapshot, streams the returned statistics
// through the classifier and catalog, and forwards accepted observations
// to the sink. The only state it retains between cycles is the snapshots
// and the already-warned anomaly sets.
type Translator struct {
	catalogs  map[Family]*Catalog
	sink      Sink
	instances []*Instance
	logger    *slog.Logger
	mon       *metrics.Metrics

	// Base keys already reported as unknown, deduplicated process-wide.
	unknownKeys map[string]struct{}
}

// NewTranslator wires the catalogs, sink, and instances together. The
// catalogs must cover every family the instances can detect. mon may be
// nil when self-metrics are not wanted.
func NewTranslator(catalogs []*Catalog, sink Sink, instances []*Instance, logger *slog.Logger, mon *metrics.Metrics) *Translator {
	byFamily := make(map[Family]*Catalog, len(catalogs))
	for _, c := range catalogs {
		byFamily[c.Family()] = c
	}
	return &Translator{
		catalogs:    byFamily,
		sink:        sink,
		instances:   instances,
		logger:      logger,
		mon:         mon,
		unknownKeys: make(map[string]struct{}),
	}
}

// Update runs one update cycle over all instances sequentially. A fatal
// configuration error aborts the cycle and is returned; any other
// per-instance failure is logged and counted, and the remaining instances
// still export.
func (t *Translator) Update(ctx context.Context) error {
	if t.mon != nil {
		t.mon.ScrapesTotal.Inc()
	}

	for _, inst := range t.instances {
		if err := t.updateInstance(ctx, inst); err != nil {
			var fatal *UnsupportedConfigError
			if errors.As(err, &fatal) {
				return err
			}
			t.logger.Error("scrape failed", "socket", inst.Path(), "error", err)
			if t.mon != nil {
				t.mon.ScrapeErrors.WithLabelValues(inst.Path()).Inc()
			}
		}
	}
	return nil
}

// updateInstance refreshes one instance and translates its statistics.
func (t *Translator) updateInstance(ctx context.Context, inst *Instance) error {
	if err := inst.Refresh(ctx); err != nil {
		return err
	}

	stats, err := inst.Statistics(ctx)
	if err != nil {
		return err
	}

	catalog, ok := t.catalogs[inst.Family()]
	if !ok {
		return &UnsupportedConfigError{Socket: inst.Path(), Reason: "no catalog for family " + inst.Family().String()}
	}

	for key, samples := range stats {
		// Only the first (value, timestamp) pair per key is current.
		if len(samples) == 0 {
			continue
		}
		value, numeric := samples[0].Numeric()
		if !numeric {
			t.logger.Debug("skipping non-numeric statistic", "key", key, "socket", inst.Path())
			continue
		}

		parsed, err := ParseKey(key)
		if err != nil {
			// Rare path, not deduplicated: signals an upstream format change.
			t.logger.Warn("statistic key classification failed", "key", key, "socket", inst.Path(), "error", err)
			continue
		}

		labels := map[string]string{}
		switch parsed.Scope {
		case ScopeGlobal:
			if catalog.IsSuppressed(parsed.BaseKey, ScopeGlobal) {
				continue
			}
		case ScopeSubnet:
			if catalog.IsSuppressed(parsed.BaseKey, ScopeSubnet) {
				continue
			}
			desc, found, firstMiss := inst.lookupSubnet(parsed.SubnetID)
			if !found {
				if firstMiss {
					t.logger.Warn("subnet appears in statistics but not in the configuration, ignoring",
						"subnet_id", parsed.SubnetID, "socket", inst.Path())
				}
				continue
			}
			labels[labelSubnet] = desc.Name
			labels[labelSubnetID] = strconv.Itoa(parsed.SubnetID)
		}

		ref, ok := catalog.Lookup(parsed.BaseKey)
		if !ok {
			if _, warned := t.unknownKeys[parsed.BaseKey]; !warned {
				t.unknownKeys[parsed.BaseKey] = struct{}{}
				t.logger.Warn("unhandled statistic key, consider adding it to the catalog",
					"key", parsed.BaseKey, "family", inst.Family().String())
			}
			continue
		}

		// Static labels never collide with the subnet labels; the catalog
		// rejects such mappings at construction.
		for name, v := range ref.StaticLabels {
			labels[name] = v
		}

		if err := t.sink.Set(ref.Name, labels, value); err != nil {
			t.logger.Error("dropping observation", "key", key, "metric", ref.Name, "error", err)
		}
	}
	return nil
}
