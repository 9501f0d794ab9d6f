package exporter

// dhcp4Catalog holds the DHCPv4 translation tables. The bulk of the
// exporter lives here: which base keys feed which metrics, and which keys
// are dropped at a scope because another scope reports them in more detail.
func dhcp4Catalog() *Catalog {
	definitions := map[string]MetricDefinition{
		// Packets
		"sent_packets": {
			Name:   "kea_dhcp4_packets_sent_total",
			Help:   "Packets sent",
			Labels: []string{"operation"},
		},
		"received_packets": {
			Name:   "kea_dhcp4_packets_received_total",
			Help:   "Packets received",
			Labels: []string{"operation"},
		},

		// per Subnet
		"addresses_allocation_fail": {
			Name:   "kea_dhcp4_allocations_failed_total",
			Help:   "Allocation fail count",
			Labels: []string{"subnet", "subnet_id", "context"},
		},
		"addresses_assigned_total": {
			Name:   "kea_dhcp4_addresses_assigned_total",
			Help:   "Assigned addresses",
			Labels: []string{"subnet", "subnet_id"},
		},
		"addresses_declined_total": {
			Name:   "kea_dhcp4_addresses_declined_total",
			Help:   "Declined counts",
			Labels: []string{"subnet", "subnet_id"},
		},
		"addresses_declined_reclaimed_total": {
			Name:   "kea_dhcp4_addresses_declined_reclaimed_total",
			Help:   "Declined addresses that were reclaimed",
			Labels: []string{"subnet", "subnet_id"},
		},
		"addresses_reclaimed_total": {
			Name:   "kea_dhcp4_addresses_reclaimed_total",
			Help:   "Expired addresses that were reclaimed",
			Labels: []string{"subnet", "subnet_id"},
		},
		"addresses_total": {
			Name:   "kea_dhcp4_addresses_total",
			Help:   "Size of subnet address pool",
			Labels: []string{"subnet", "subnet_id"},
		},
		"reservation_conflicts_total": {
			Name:   "kea_dhcp4_reservation_conflicts_total",
			Help:   "Reservation conflict count",
			Labels: []string{"subnet", "subnet_id"},
		},
	}

	mappings := map[string]MetricMapping{
		// sent_packets
		"pkt4-ack-sent":   {Metric: "sent_packets", StaticLabels: map[string]string{"operation": "ack"}},
		"pkt4-nak-sent":   {Metric: "sent_packets", StaticLabels: map[string]string{"operation": "nak"}},
		"pkt4-offer-sent": {Metric: "sent_packets", StaticLabels: map[string]string{"operation": "offer"}},

		// received_packets
		"pkt4-discover-received": {Metric: "received_packets", StaticLabels: map[string]string{"operation": "discover"}},
		"pkt4-offer-received":    {Metric: "received_packets", StaticLabels: map[string]string{"operation": "offer"}},
		"pkt4-request-received":  {Metric: "received_packets", StaticLabels: map[string]string{"operation": "request"}},
		"pkt4-ack-received":      {Metric: "received_packets", StaticLabels: map[string]string{"operation": "ack"}},
		"pkt4-nak-received":      {Metric: "received_packets", StaticLabels: map[string]string{"operation": "nak"}},
		"pkt4-release-received":  {Metric: "received_packets", StaticLabels: map[string]string{"operation": "release"}},
		"pkt4-decline-received":  {Metric: "received_packets", StaticLabels: map[string]string{"operation": "decline"}},
		"pkt4-inform-received":   {Metric: "received_packets", StaticLabels: map[string]string{"operation": "inform"}},
		"pkt4-unknown-received":  {Metric: "received_packets", StaticLabels: map[string]string{"operation": "unknown"}},
		"pkt4-parse-failed":      {Metric: "received_packets", StaticLabels: map[string]string{"operation": "parse-failed"}},
		"pkt4-receive-drop":      {Metric: "received_packets", StaticLabels: map[string]string{"operation": "drop"}},

		// per Subnet
		"v4-allocation-fail-subnet":         {Metric: "addresses_allocation_fail", StaticLabels: map[string]string{"context": "subnet"}},
		"v4-allocation-fail-shared-network": {Metric: "addresses_allocation_fail", StaticLabels: map[string]string{"context": "shared-network"}},
		"v4-allocation-fail-no-pools":       {Metric: "addresses_allocation_fail", StaticLabels: map[string]string{"context": "no-pools"}},
		"v4-allocation-fail-classes":        {Metric: "addresses_allocation_fail", StaticLabels: map[string]string{"context": "classes"}},
		"assigned-addresses":                {Metric: "addresses_assigned_total"},
		"declined-addresses":                {Metric: "addresses_declined_total"},
		"reclaimed-declined-addresses":      {Metric: "addresses_declined_reclaimed_total"},
		"reclaimed-leases":                  {Metric: "addresses_reclaimed_total"},
		"total-addresses":                   {Metric: "addresses_total"},
		"v4-reservation-conflicts":          {Metric: "reservation_conflicts_total"},
	}

	// Global-scope rollups of per-subnet or per-packet-type statistics.
	globalIgnore := keySet(
		"cumulative-assigned-addresses",
		"declined-addresses",
		"reclaimed-declined-addresses",
		"reclaimed-leases",
		"v4-reservation-conflicts",
		"v4-allocation-fail",
		"v4-allocation-fail-subnet",
		"v4-allocation-fail-shared-network",
		"v4-allocation-fail-no-pools",
		"v4-allocation-fail-classes",
		"pkt4-sent",
		"pkt4-received",
	)

	subnetIgnore := keySet(
		"cumulative-assigned-addresses",
		"v4-allocation-fail",
	)

	return &Catalog{
		definitions:  definitions,
		mappings:     mappings,
		globalIgnore: globalIgnore,
		subnetIgnore: subnetIgnore,
	}
}

func keySet(keys ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}
