// Package config handles TOML configuration parsing, validation, and defaults for kea-exporter.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the top-level configuration for kea-exporter.
type Config struct {
	Server  ServerConfig   `toml:"server"`
	Targets []TargetConfig `toml:"target"`
}

// ServerConfig holds the HTTP exposition server settings.
type ServerConfig struct {
	ListenAddress string     `toml:"listen_address"`
	MetricsPath   string     `toml:"metrics_path"`
	LogLevel      string     `toml:"log_level"`
	Auth          AuthConfig `toml:"auth"`
}

// AuthConfig holds optional basic-auth settings for the metrics endpoint.
// PasswordHash is a bcrypt hash; generate one with kea-hashpw.
type AuthConfig struct {
	Enabled      bool   `toml:"enabled"`
	Username     string `toml:"username"`
	PasswordHash string `toml:"password_hash"`
}

// TargetConfig describes one Kea control socket to monitor.
type TargetConfig struct {
	Socket  string `toml:"socket"`
	Timeout string `toml:"timeout"`
}

// QueryTimeout returns the parsed per-target control-channel timeout.
func (t TargetConfig) QueryTimeout() time.Duration {
	d, err := time.ParseDuration(t.Timeout)
	if err != nil || d <= 0 {
		return DefaultQueryTimeout
	}
	return d
}

// Load reads and parses a TOML config file, applies defaults, and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a configuration with all defaults applied and no targets.
// Used when no config file is given and targets come from the command line.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills in default values for unset fields.
func applyDefaults(cfg *Config) {
	if cfg.Server.ListenAddress == "" {
		cfg.Server.ListenAddress = DefaultListenAddress
	}
	if cfg.Server.MetricsPath == "" {
		cfg.Server.MetricsPath = DefaultMetricsPath
	}
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = DefaultLogLevel
	}
	for i := range cfg.Targets {
		if cfg.Targets[i].Timeout == "" {
			cfg.Targets[i].Timeout = DefaultQueryTimeout.String()
		}
	}
}

// validate checks the configuration for errors.
func validate(cfg *Config) error {
	if cfg.Server.MetricsPath == "" || cfg.Server.MetricsPath[0] != '/' {
		return fmt.Errorf("server.metrics_path %q must start with '/'", cfg.Server.MetricsPath)
	}
	if cfg.Server.Auth.Enabled {
		if cfg.Server.Auth.Username == "" {
			return fmt.Errorf("server.auth.username is required when auth is enabled")
		}
		if cfg.Server.Auth.PasswordHash == "" {
			return fmt.Errorf("server.auth.password_hash is required when auth is enabled")
		}
	}
	for i, t := range cfg.Targets {
		if t.Socket == "" {
			return fmt.Errorf("target[%d]: socket is required", i)
		}
		if t.Timeout != "" {
			if _, err := time.ParseDuration(t.Timeout); err != nil {
				return fmt.Errorf("target[%d]: invalid timeout %q: %w", i, t.Timeout, err)
			}
		}
	}
	return nil
}
