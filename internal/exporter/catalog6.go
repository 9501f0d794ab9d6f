package exporter

// dhcp6Catalog holds the DHCPv6 translation tables, including the
// DHCPv4-over-DHCPv6 packet metrics and the IA_NA/IA_PD pools.
func dhcp6Catalog() *Catalog {
	definitions := map[string]MetricDefinition{
		// Packets sent/received
		"sent_packets": {
			Name:   "kea_dhcp6_packets_sent_total",
			Help:   "Packets sent",
			Labels: []string{"operation"},
		},
		"received_packets": {
			Name:   "kea_dhcp6_packets_received_total",
			Help:   "Packets received",
			Labels: []string{"operation"},
		},

		// DHCPv4-over-DHCPv6
		"sent_dhcp4_packets": {
			Name:   "kea_dhcp6_packets_sent_dhcp4_total",
			Help:   "DHCPv4-over-DHCPv6 packets sent",
			Labels: []string{"operation"},
		},
		"received_dhcp4_packets": {
			Name:   "kea_dhcp6_packets_received_dhcp4_total",
			Help:   "DHCPv4-over-DHCPv6 packets received",
			Labels: []string{"operation"},
		},

		// per Subnet
		"addresses_allocation_fail": {
			Name:   "kea_dhcp6_allocations_failed_total",
			Help:   "Allocation fail count",
			Labels: []string{"subnet", "subnet_id", "context"},
		},
		"addresses_declined_total": {
			Name:   "kea_dhcp6_addresses_declined_total",
			Help:   "Declined addresses",
			Labels: []string{"subnet", "subnet_id"},
		},
		"addresses_declined_reclaimed_total": {
			Name:   "kea_dhcp6_addresses_declined_reclaimed_total",
			Help:   "Declined addresses that were reclaimed",
			Labels: []string{"subnet", "subnet_id"},
		},
		"addresses_reclaimed_total": {
			Name:   "kea_dhcp6_addresses_reclaimed_total",
			Help:   "Expired addresses that were reclaimed",
			Labels: []string{"subnet", "subnet_id"},
		},
		"reservation_conflicts_total": {
			Name:   "kea_dhcp6_reservation_conflicts_total",
			Help:   "Reservation conflict count",
			Labels: []string{"subnet", "subnet_id"},
		},

		// IA_NA
		"na_assigned_total": {
			Name:   "kea_dhcp6_na_assigned_total",
			Help:   "Assigned non-temporary addresses (IA_NA)",
			Labels: []string{"subnet", "subnet_id"},
		},
		"na_total": {
			Name:   "kea_dhcp6_na_total",
			Help:   "Size of non-temporary address pool",
			Labels: []string{"subnet", "subnet_id"},
		},

		// IA_PD
		"pd_assigned_total": {
			Name:   "kea_dhcp6_pd_assigned_total",
			Help:   "Assigned prefix delegations (IA_PD)",
			Labels: []string{"subnet", "subnet_id"},
		},
		"pd_total": {
			Name:   "kea_dhcp6_pd_total",
			Help:   "Size of prefix delegation pool",
			Labels: []string{"subnet", "subnet_id"},
		},
	}

	mappings := map[string]MetricMapping{
		// sent_packets
		"pkt6-advertise-sent": {Metric: "sent_packets", StaticLabels: map[string]string{"operation": "advertise"}},
		"pkt6-reply-sent":     {Metric: "sent_packets", StaticLabels: map[string]string{"operation": "reply"}},

		// received_packets
		"pkt6-receive-drop":        {Metric: "received_packets", StaticLabels: map[string]string{"operation": "drop"}},
		"pkt6-parse-failed":        {Metric: "received_packets", StaticLabels: map[string]string{"operation": "parse-failed"}},
		"pkt6-solicit-received":    {Metric: "received_packets", StaticLabels: map[string]string{"operation": "solicit"}},
		"pkt6-advertise-received":  {Metric: "received_packets", StaticLabels: map[string]string{"operation": "advertise"}},
		"pkt6-request-received":    {Metric: "received_packets", StaticLabels: map[string]string{"operation": "request"}},
		"pkt6-reply-received":      {Metric: "received_packets", StaticLabels: map[string]string{"operation": "reply"}},
		"pkt6-renew-received":      {Metric: "received_packets", StaticLabels: map[string]string{"operation": "renew"}},
		"pkt6-rebind-received":     {Metric: "received_packets", StaticLabels: map[string]string{"operation": "rebind"}},
		"pkt6-release-received":    {Metric: "received_packets", StaticLabels: map[string]string{"operation": "release"}},
		"pkt6-decline-received":    {Metric: "received_packets", StaticLabels: map[string]string{"operation": "decline"}},
		"pkt6-infrequest-received": {Metric: "received_packets", StaticLabels: map[string]string{"operation": "infrequest"}},
		"pkt6-unknown-received":    {Metric: "received_packets", StaticLabels: map[string]string{"operation": "unknown"}},

		// DHCPv4-over-DHCPv6
		"pkt6-dhcpv4-response-sent":     {Metric: "sent_dhcp4_packets", StaticLabels: map[string]string{"operation": "response"}},
		"pkt6-dhcpv4-query-received":    {Metric: "received_dhcp4_packets", StaticLabels: map[string]string{"operation": "query"}},
		"pkt6-dhcpv4-response-received": {Metric: "received_dhcp4_packets", StaticLabels: map[string]string{"operation": "response"}},

		// per Subnet
		"v6-allocation-fail-shared-network": {Metric: "addresses_allocation_fail", StaticLabels: map[string]string{"context": "shared-network"}},
		"v6-allocation-fail-subnet":         {Metric: "addresses_allocation_fail", StaticLabels: map[string]string{"context": "subnet"}},
		"v6-allocation-fail-no-pools":       {Metric: "addresses_allocation_fail", StaticLabels: map[string]string{"context": "no-pools"}},
		"v6-allocation-fail-classes":        {Metric: "addresses_allocation_fail", StaticLabels: map[string]string{"context": "classes"}},
		"assigned-nas":                      {Metric: "na_assigned_total"},
		"assigned-pds":                      {Metric: "pd_assigned_total"},
		"declined-addresses":                {Metric: "addresses_declined_total"},
		"declined-reclaimed-addresses":      {Metric: "addresses_declined_reclaimed_total"},
		"reclaimed-declined-addresses":      {Metric: "addresses_declined_reclaimed_total"},
		"reclaimed-leases":                  {Metric: "addresses_reclaimed_total"},
		"total-nas":                         {Metric: "na_total"},
		"total-pds":                         {Metric: "pd_total"},
		"v6-reservation-conflicts":          {Metric: "reservation_conflicts_total"},
	}

	globalIgnore := keySet(
		"cumulative-assigned-addresses",
		"declined-addresses",
		"cumulative-assigned-nas",
		"cumulative-assigned-pds",
		"reclaimed-declined-addresses",
		"reclaimed-leases",
		"v6-reservation-conflicts",
		"v6-allocation-fail",
		"v6-allocation-fail-subnet",
		"v6-allocation-fail-shared-network",
		"v6-allocation-fail-no-pools",
		"v6-allocation-fail-classes",
		"pkt6-sent",
		"pkt6-received",
	)

	subnetIgnore := keySet(
		"cumulative-assigned-addresses",
		"cumulative-assigned-nas",
		"cumulative-assigned-pds",
		"v6-allocation-fail",
	)

	return &Catalog{
		definitions:  definitions,
		mappings:     mappings,
		globalIgnore: globalIgnore,
		subnetIgnore: subnetIgnore,
	}
}
