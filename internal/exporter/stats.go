package exporter

import (
	"encoding/json"
	"fmt"
)

// StatisticSample is one [value, timestamp] pair from a statistic-get-all
// response. Kea reports most values as numbers; the few string-valued
// statistics (durations) have no gauge representation and are flagged
// non-numeric.
type StatisticSample struct {
	Value     float64
	Timestamp string

	numeric bool
}

// Numeric returns the sample value and whether it was a JSON number.
func (s StatisticSample) Numeric() (float64, bool) {
	return s.Value, s.numeric
}

// UnmarshalJSON decodes the two-element [value, timestamp] array.
func (s *StatisticSample) UnmarshalJSON(b []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return fmt.Errorf("parsing statistic sample: %w", err)
	}
	if len(fields) < 2 {
		return fmt.Errorf("statistic sample has %d fields, want 2", len(fields))
	}

	if err := json.Unmarshal(fields[0], &s.Value); err == nil {
		s.numeric = true
	}
	if err := json.Unmarshal(fields[1], &s.Timestamp); err != nil {
		return fmt.Errorf("parsing statistic timestamp: %w", err)
	}
	return nil
}

// parseStatistics decodes the statistic-get-all arguments. Only the first
// sample per key is consumed by the translator; the rest are history.
func parseStatistics(arguments json.RawMessage, socket string) (map[string][]StatisticSample, error) {
	stats := make(map[string][]StatisticSample)
	if err := json.Unmarshal(arguments, &stats); err != nil {
		return nil, fmt.Errorf("parsing statistic-get-all arguments from %s: %w", socket, err)
	}
	return stats, nil
}
