// Package exporter translates the Kea statistics namespace into labeled
// Prometheus observations. It classifies raw statistic keys, resolves them
// against the latest configuration snapshot, applies per-family suppression
// rules, and writes the surviving observations to a metrics sink.
package exporter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Scope says whether a statistic is reported for the whole server or for
// one configured subnet.
type Scope int

const (
	ScopeGlobal Scope = iota
	ScopeSubnet
)

// subnetKeyPrefix marks statistic keys that carry a subnet scope.
const subnetKeyPrefix = "subnet["

// subnetKeyPattern is the sole structural convention subnet-scoped keys
// follow: subnet[<id>].<statistic>.
var subnetKeyPattern = regexp.MustCompile(`^subnet\[(\d+)\]\.([\w-]+)$`)

// ParsedKey is the result of classifying a raw statistic key. BaseKey is
// the catalog lookup key; SubnetID is only meaningful for ScopeSubnet.
type ParsedKey struct {
	Scope    Scope
	SubnetID int
	BaseKey  string
}

// ParseKey classifies a raw statistic key. Keys without the subnet prefix
// are global and returned unchanged as the base key. Keys with the prefix
// must match the subnet key pattern; a mismatch is an error the caller
// should report, since it signals an upstream format change.
func ParseKey(key string) (ParsedKey, error) {
	if !strings.HasPrefix(key, subnetKeyPrefix) {
		return ParsedKey{Scope: ScopeGlobal, BaseKey: key}, nil
	}

	m := subnetKeyPattern.FindStringSubmatch(key)
	if m == nil {
		return ParsedKey{}, fmt.Errorf("subnet key pattern mismatch for %q", key)
	}

	id, err := strconv.Atoi(m[1])
	if err != nil {
		return ParsedKey{}, fmt.Errorf("subnet id out of range in %q: %w", key, err)
	}

	return ParsedKey{Scope: ScopeSubnet, SubnetID: id, BaseKey: m[2]}, nil
}
