package exporter

import (
	"fmt"
	"sort"
)

// Family is the DHCP address family a Kea daemon serves. Exactly one family
// is active per monitored instance for its lifetime.
type Family int

const (
	FamilyDHCP4 Family = iota + 1
	FamilyDHCP6
)

func (f Family) String() string {
	switch f {
	case FamilyDHCP4:
		return "dhcp4"
	case FamilyDHCP6:
		return "dhcp6"
	default:
		return fmt.Sprintf("family(%d)", int(f))
	}
}

// Dynamic labels attached to subnet-scoped observations. Catalog static
// labels may never use these names.
const (
	labelSubnet   = "subnet"
	labelSubnetID = "subnet_id"
)

// MetricDefinition declares one exported metric and its full label schema.
type MetricDefinition struct {
	Name   string
	Help   string
	Labels []string
}

// MetricMapping binds a base statistic key to a metric, optionally fixing
// some of the metric's labels to static values. Several base keys may feed
// the same metric with different static labels.
type MetricMapping struct {
	Metric       string
	StaticLabels map[string]string
}

// Catalog is the immutable per-family translation table: metric
// definitions, base-key mappings, and the per-scope suppression sets.
// Built once at startup, pure lookups afterwards.
type Catalog struct {
	family       Family
	definitions  map[string]MetricDefinition
	mappings     map[string]MetricMapping
	globalIgnore map[string]struct{}
	subnetIgnore map[string]struct{}
}

// MetricRef is the result of a catalog lookup.
type MetricRef struct {
	Name         string
	StaticLabels map[string]string
}

// NewCatalog builds and validates the catalog for the given family.
func NewCatalog(family Family) (*Catalog, error) {
	var c *Catalog
	switch family {
	case FamilyDHCP4:
		c = dhcp4Catalog()
	case FamilyDHCP6:
		c = dhcp6Catalog()
	default:
		return nil, fmt.Errorf("unsupported family %v", family)
	}
	c.family = family
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("%v catalog: %w", family, err)
	}
	return c, nil
}

// Family returns the address family this catalog translates for.
func (c *Catalog) Family() Family {
	return c.family
}

// Lookup resolves a base key to its metric name and static labels. Repeated
// calls with the same key always return the same result.
func (c *Catalog) Lookup(baseKey string) (MetricRef, bool) {
	m, ok := c.mappings[baseKey]
	if !ok {
		return MetricRef{}, false
	}
	return MetricRef{Name: c.definitions[m.Metric].Name, StaticLabels: m.StaticLabels}, true
}

// IsSuppressed reports whether the base key is intentionally not exported
// at the given scope, because it duplicates information represented at
// another granularity.
func (c *Catalog) IsSuppressed(baseKey string, scope Scope) bool {
	switch scope {
	case ScopeGlobal:
		_, ok := c.globalIgnore[baseKey]
		return ok
	case ScopeSubnet:
		_, ok := c.subnetIgnore[baseKey]
		return ok
	default:
		return false
	}
}

// Definitions returns all metric definitions, sorted by metric name.
func (c *Catalog) Definitions() []MetricDefinition {
	defs := make([]MetricDefinition, 0, len(c.definitions))
	for _, d := range c.definitions {
		defs = append(defs, d)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// validate checks every mapping against its metric's declared label schema:
// static labels must exactly cover the schema minus the dynamic subnet
// labels, and must never reuse the dynamic label names.
func (c *Catalog) validate() error {
	for key, m := range c.mappings {
		def, ok := c.definitions[m.Metric]
		if !ok {
			return fmt.Errorf("mapping %q references unknown metric %q", key, m.Metric)
		}

		required := make(map[string]struct{})
		for _, l := range def.Labels {
			if l != labelSubnet && l != labelSubnetID {
				required[l] = struct{}{}
			}
		}

		for name := range m.StaticLabels {
			if name == labelSubnet || name == labelSubnetID {
				return fmt.Errorf("mapping %q uses reserved label %q", key, name)
			}
			if _, ok := required[name]; !ok {
				return fmt.Errorf("mapping %q sets label %q absent from %s schema", key, name, def.Name)
			}
			delete(required, name)
		}
		if len(required) != 0 {
			for name := range required {
				return fmt.Errorf("mapping %q leaves label %q of %s unset", key, name, def.Name)
			}
		}
	}
	return nil
}
