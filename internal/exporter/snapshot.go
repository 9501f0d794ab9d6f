package exporter

import (
	"encoding/json"
	"fmt"
)

// SubnetDescriptor identifies one configured subnet. The integer id is
// unique within an instance's current configuration; Name is the subnet
// prefix used as a label value.
type SubnetDescriptor struct {
	ID   int
	Name string
}

// ConfigSnapshot is the most recently fetched configuration of one Kea
// daemon: its address family and its subnet directory. It is rebuilt from
// scratch on every refresh, never merged incrementally.
type ConfigSnapshot struct {
	Family  Family
	Subnets map[int]SubnetDescriptor
}

// UnsupportedConfigError is a fatal configuration error: the daemon's
// configuration exposes neither or both address families, or the detected
// family changed after it was pinned. Continuing would silently report
// wrong or no metrics, so callers must abort.
type UnsupportedConfigError struct {
	Socket string
	Reason string
}

func (e *UnsupportedConfigError) Error() string {
	return fmt.Sprintf("unsupported configuration on %s: %s", e.Socket, e.Reason)
}

// JSON shapes of the config-get arguments for both families.
type configArguments struct {
	Dhcp4 *dhcp4Arguments `json:"Dhcp4"`
	Dhcp6 *dhcp6Arguments `json:"Dhcp6"`
}

type dhcp4Arguments struct {
	Subnet4 []subnetArguments `json:"subnet4"`
}

type dhcp6Arguments struct {
	Subnet6 []subnetArguments `json:"subnet6"`
}

type subnetArguments struct {
	ID     int    `json:"id"`
	Subnet string `json:"subnet"`
}

// parseSnapshot inspects a config-get response for exactly one top-level
// family section and rebuilds the subnet directory for it.
func parseSnapshot(arguments json.RawMessage, socket string) (*ConfigSnapshot, error) {
	var args configArguments
	if err := json.Unmarshal(arguments, &args); err != nil {
		return nil, fmt.Errorf("parsing config-get arguments from %s: %w", socket, err)
	}

	switch {
	case args.Dhcp4 != nil && args.Dhcp6 != nil:
		return nil, &UnsupportedConfigError{Socket: socket, Reason: "both Dhcp4 and Dhcp6 sections present"}
	case args.Dhcp4 != nil:
		return &ConfigSnapshot{Family: FamilyDHCP4, Subnets: subnetMap(args.Dhcp4.Subnet4)}, nil
	case args.Dhcp6 != nil:
		return &ConfigSnapshot{Family: FamilyDHCP6, Subnets: subnetMap(args.Dhcp6.Subnet6)}, nil
	default:
		return nil, &UnsupportedConfigError{Socket: socket, Reason: "neither Dhcp4 nor Dhcp6 section present"}
	}
}

func subnetMap(subnets []subnetArguments) map[int]SubnetDescriptor {
	m := make(map[int]SubnetDescriptor, len(subnets))
	for _, s := range subnets {
		m[s.ID] = SubnetDescriptor{ID: s.ID, Name: s.Subnet}
	}
	return m
}
