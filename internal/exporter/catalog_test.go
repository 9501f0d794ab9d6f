package exporter

import (
	"reflect"
	"testing"
)

func TestNewCatalogFamilies(t *testing.T) {
	for _, family := range []Family{FamilyDHCP4, FamilyDHCP6} {
		cat, err := NewCatalog(family)
		if err != nil {
			t.Fatalf("NewCatalog(%v) failed: %v", family, err)
		}
		if cat.Family() != family {
			t.Errorf("Family() = %v, want %v", cat.Family(), family)
		}
	}
	if _, err := NewCatalog(Family(99)); err == nil {
		t.Error("NewCatalog(99) succeeded, want error")
	}
}

func TestCatalogLookupPurity(t *testing.T) {
	cat, err := NewCatalog(FamilyDHCP4)
	if err != nil {
		t.Fatal(err)
	}

	first, ok := cat.Lookup("pkt4-ack-sent")
	if !ok {
		t.Fatal("pkt4-ack-sent not found in DHCPv4 catalog")
	}
	second, _ := cat.Lookup("pkt4-ack-sent")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated lookups differ: %+v vs %+v", first, second)
	}
	if first.Name != "kea_dhcp4_packets_sent_total" {
		t.Errorf("metric name = %q, want kea_dhcp4_packets_sent_total", first.Name)
	}
	if first.StaticLabels["operation"] != "ack" {
		t.Errorf("operation label = %q, want ack", first.StaticLabels["operation"])
	}
}

func TestCatalogLookupMappings(t *testing.T) {
	tests := []struct {
		family  Family
		baseKey string
		metric  string
		static  map[string]string
	}{
		{FamilyDHCP4, "total-addresses", "kea_dhcp4_addresses_total", nil},
		{FamilyDHCP4, "v4-allocation-fail-classes", "kea_dhcp4_allocations_failed_total", map[string]string{"context": "classes"}},
		{FamilyDHCP4, "pkt4-receive-drop", "kea_dhcp4_packets_received_total", map[string]string{"operation": "drop"}},
		{FamilyDHCP6, "assigned-nas", "kea_dhcp6_na_assigned_total", nil},
		{FamilyDHCP6, "total-pds", "kea_dhcp6_pd_total", nil},
		{FamilyDHCP6, "pkt6-dhcpv4-query-received", "kea_dhcp6_packets_received_dhcp4_total", map[string]string{"operation": "query"}},
		// Two spellings feed the same reclaimed metric.
		{FamilyDHCP6, "declined-reclaimed-addresses", "kea_dhcp6_addresses_declined_reclaimed_total", nil},
		{FamilyDHCP6, "reclaimed-declined-addresses", "kea_dhcp6_addresses_declined_reclaimed_total", nil},
	}
	for _, tt := range tests {
		t.Run(tt.baseKey, func(t *testing.T) {
			cat, err := NewCatalog(tt.family)
			if err != nil {
				t.Fatal(err)
			}
			ref, ok := cat.Lookup(tt.baseKey)
			if !ok {
				t.Fatalf("%q not found in %v catalog", tt.baseKey, tt.family)
			}
			if ref.Name != tt.metric {
				t.Errorf("metric = %q, want %q", ref.Name, tt.metric)
			}
			for name, want := range tt.static {
				if got := ref.StaticLabels[name]; got != want {
					t.Errorf("static label %s = %q, want %q", name, got, want)
				}
			}
		})
	}
}

func TestCatalogSuppression(t *testing.T) {
	tests := []struct {
		family  Family
		baseKey string
		global  bool
		subnet  bool
	}{
		// Rollups suppressed at global scope but reported per subnet.
		{FamilyDHCP4, "declined-addresses", true, false},
		{FamilyDHCP4, "reclaimed-leases", true, false},
		{FamilyDHCP4, "v4-reservation-conflicts", true, false},
		// Sums of packet types only exist at global scope and stay hidden.
		{FamilyDHCP4, "pkt4-sent", true, false},
		{FamilyDHCP4, "pkt4-received", true, false},
		// Suppressed at both scopes.
		{FamilyDHCP4, "cumulative-assigned-addresses", true, true},
		{FamilyDHCP4, "v4-allocation-fail", true, true},
		// Not suppressed anywhere.
		{FamilyDHCP4, "total-addresses", false, false},
		{FamilyDHCP4, "pkt4-ack-sent", false, false},
		{FamilyDHCP6, "cumulative-assigned-nas", true, true},
		{FamilyDHCP6, "declined-addresses", true, false},
		{FamilyDHCP6, "pkt6-sent", true, false},
		{FamilyDHCP6, "total-nas", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.baseKey, func(t *testing.T) {
			cat, err := NewCatalog(tt.family)
			if err != nil {
				t.Fatal(err)
			}
			if got := cat.IsSuppressed(tt.baseKey, ScopeGlobal); got != tt.global {
				t.Errorf("IsSuppressed(%q, Global) = %v, want %v", tt.baseKey, got, tt.global)
			}
			if got := cat.IsSuppressed(tt.baseKey, ScopeSubnet); got != tt.subnet {
				t.Errorf("IsSuppressed(%q, Subnet) = %v, want %v", tt.baseKey, got, tt.subnet)
			}
		})
	}
}

func TestCatalogValidateRejectsBadMappings(t *testing.T) {
	base := dhcp4Catalog()

	tests := []struct {
		name    string
		mapping MetricMapping
	}{
		{"unknown metric", MetricMapping{Metric: "no_such_metric"}},
		{"reserved label", MetricMapping{Metric: "addresses_total", StaticLabels: map[string]string{"subnet": "x"}}},
		{"label not in schema", MetricMapping{Metric: "sent_packets", StaticLabels: map[string]string{"operation": "ack", "bogus": "y"}}},
		{"missing required label", MetricMapping{Metric: "sent_packets"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Catalog{
				family:       FamilyDHCP4,
				definitions:  base.definitions,
				mappings:     map[string]MetricMapping{"bad-key": tt.mapping},
				globalIgnore: map[string]struct{}{},
				subnetIgnore: map[string]struct{}{},
			}
			if err := c.validate(); err == nil {
				t.Error("validate() accepted a bad mapping")
			}
		})
	}
}

func TestCatalogDefinitionsSorted(t *testing.T) {
	cat, err := NewCatalog(FamilyDHCP6)
	if err != nil {
		t.Fatal(err)
	}
	defs := cat.Definitions()
	if len(defs) == 0 {
		t.Fatal("no definitions returned")
	}
	for i := 1; i < len(defs); i++ {
		if defs[i-1].Name >= defs[i].Name {
			t.Errorf("definitions not sorted: %q before %q", defs[i-1].Name, defs[i].Name)
		}
	}
}
