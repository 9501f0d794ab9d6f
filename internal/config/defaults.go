package config

import "time"

// Default configuration values.
const (
	DefaultListenAddress = "0.0.0.0:9547"
	DefaultMetricsPath   = "/metrics"
	DefaultLogLevel      = "info"
	DefaultQueryTimeout  = 5 * time.Second
)
