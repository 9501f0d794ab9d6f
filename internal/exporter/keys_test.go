package exporter

import "testing"

func TestParseKeyGlobal(t *testing.T) {
	tests := []string{
		"pkt4-ack-sent",
		"declined-addresses",
		"cumulative-assigned-addresses",
		"reclaimed-leases",
		// Prefix-free keys containing brackets elsewhere stay global.
		"weird[0].key",
	}
	for _, key := range tests {
		t.Run(key, func(t *testing.T) {
			parsed, err := ParseKey(key)
			if err != nil {
				t.Fatalf("ParseKey(%q) returned error: %v", key, err)
			}
			if parsed.Scope != ScopeGlobal {
				t.Errorf("ParseKey(%q) scope = %v, want ScopeGlobal", key, parsed.Scope)
			}
			if parsed.BaseKey != key {
				t.Errorf("ParseKey(%q) base key = %q, want unchanged", key, parsed.BaseKey)
			}
		})
	}
}

func TestParseKeySubnet(t *testing.T) {
	tests := []struct {
		key      string
		subnetID int
		baseKey  string
	}{
		{"subnet[7].total-addresses", 7, "total-addresses"},
		{"subnet[0].assigned-addresses", 0, "assigned-addresses"},
		{"subnet[1024].v4-allocation-fail-no-pools", 1024, "v4-allocation-fail-no-pools"},
		{"subnet[42].total-nas", 42, "total-nas"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			parsed, err := ParseKey(tt.key)
			if err != nil {
				t.Fatalf("ParseKey(%q) returned error: %v", tt.key, err)
			}
			if parsed.Scope != ScopeSubnet {
				t.Fatalf("ParseKey(%q) scope = %v, want ScopeSubnet", tt.key, parsed.Scope)
			}
			if parsed.SubnetID != tt.subnetID {
				t.Errorf("ParseKey(%q) subnet id = %d, want %d", tt.key, parsed.SubnetID, tt.subnetID)
			}
			if parsed.BaseKey != tt.baseKey {
				t.Errorf("ParseKey(%q) base key = %q, want %q", tt.key, parsed.BaseKey, tt.baseKey)
			}
		})
	}
}

func TestParseKeyMalformed(t *testing.T) {
	tests := []string{
		"subnet[].total-addresses",
		"subnet[abc].total-addresses",
		"subnet[7]",
		"subnet[7].",
		"subnet[7].total.addresses",
		"subnet[7]total-addresses",
	}
	for _, key := range tests {
		t.Run(key, func(t *testing.T) {
			if _, err := ParseKey(key); err == nil {
				t.Errorf("ParseKey(%q) succeeded, want classification error", key)
			}
		})
	}
}
