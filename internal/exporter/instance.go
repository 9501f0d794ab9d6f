package exporter

import (
	"context"

	"github.com/kea-exporter/kea-exporter/internal/keactrl"
)

// CommandClient sends commands to one Kea control channel. Satisfied by
// *keactrl.Client; tests substitute a fake.
type CommandClient interface {
	Exec(ctx context.Context, command string) (*keactrl.Response, error)
	Path() string
}

// Instance groups one control-channel endpoint with its configuration
// snapshot and per-instance warning state. Instances are owned by a single
// Translator and never shared across goroutines.
type Instance struct {
	client   CommandClient
	family   Family
	snapshot *ConfigSnapshot

	// Subnet ids already reported as missing from the snapshot. Grows for
	// the process lifetime to keep diagnostics non-repeating.
	missingSubnets map[int]struct{}
}

// NewInstance creates an instance for the given control channel. The
// address family is detected and pinned on the first successful Refresh.
func NewInstance(client CommandClient) *Instance {
	return &Instance{
		client:         client,
		missingSubnets: make(map[int]struct{}),
	}
}

// Path returns the instance's control socket path.
func (i *Instance) Path() string {
	return i.client.Path()
}

// Family returns the pinned address family, or zero before the first
// successful refresh.
func (i *Instance) Family() Family {
	return i.family
}

// Refresh fetches the current configuration and replaces the snapshot
// wholesale. Refreshing is unconditional on every update cycle: the control
// channel offers no cheap way to detect configuration drift. A missing or
// duplicated family section, or a family change after pinning, returns an
// *UnsupportedConfigError.
func (i *Instance) Refresh(ctx context.Context) error {
	resp, err := i.client.Exec(ctx, keactrl.CmdConfigGet)
	if err != nil {
		return err
	}

	snapshot, err := parseSnapshot(resp.Arguments, i.Path())
	if err != nil {
		return err
	}

	if i.family != 0 && snapshot.Family != i.family {
		return &UnsupportedConfigError{
			Socket: i.Path(),
			Reason: "configured family changed from " + i.family.String() + " to " + snapshot.Family.String(),
		}
	}

	i.family = snapshot.Family
	i.snapshot = snapshot
	return nil
}

// Statistics fetches the full statistics set from the daemon.
func (i *Instance) Statistics(ctx context.Context) (map[string][]StatisticSample, error) {
	resp, err := i.client.Exec(ctx, keactrl.CmdStatisticGetAll)
	if err != nil {
		return nil, err
	}
	return parseStatistics(resp.Arguments, i.Path())
}

// lookupSubnet resolves a subnet id against the current snapshot. The
// second return reports presence; the third is true the first time a
// missing id is seen, so the caller can warn exactly once per id.
func (i *Instance) lookupSubnet(id int) (SubnetDescriptor, bool, bool) {
	if desc, ok := i.snapshot.Subnets[id]; ok {
		return desc, true, false
	}
	if _, warned := i.missingSubnets[id]; warned {
		return SubnetDescriptor{}, false, false
	}
	i.missingSubnets[id] = struct{}{}
	return SubnetDescriptor{}, false, true
}
