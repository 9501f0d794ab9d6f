package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
[server]
listen_address = "127.0.0.1:9999"
metrics_path = "/kea"
log_level = "debug"

[server.auth]
enabled = true
username = "metrics"
password_hash = "$2a$10$abcdefghijklmnopqrstuv"

[[target]]
socket = "/run/kea/kea4.sock"
timeout = "10s"

[[target]]
socket = "/run/kea/kea6.sock"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.ListenAddress != "127.0.0.1:9999" {
		t.Errorf("listen_address = %q", cfg.Server.ListenAddress)
	}
	if cfg.Server.MetricsPath != "/kea" {
		t.Errorf("metrics_path = %q", cfg.Server.MetricsPath)
	}
	if !cfg.Server.Auth.Enabled || cfg.Server.Auth.Username != "metrics" {
		t.Errorf("auth = %+v", cfg.Server.Auth)
	}
	if len(cfg.Targets) != 2 {
		t.Fatalf("got %d targets, want 2", len(cfg.Targets))
	}
	if got := cfg.Targets[0].QueryTimeout(); got != 10*time.Second {
		t.Errorf("target[0] timeout = %v, want 10s", got)
	}
	// Second target picks up the default timeout.
	if got := cfg.Targets[1].QueryTimeout(); got != DefaultQueryTimeout {
		t.Errorf("target[1] timeout = %v, want default %v", got, DefaultQueryTimeout)
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
[[target]]
socket = "/run/kea/kea4.sock"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.ListenAddress != DefaultListenAddress {
		t.Errorf("listen_address = %q, want default", cfg.Server.ListenAddress)
	}
	if cfg.Server.MetricsPath != DefaultMetricsPath {
		t.Errorf("metrics_path = %q, want default", cfg.Server.MetricsPath)
	}
	if cfg.Server.LogLevel != DefaultLogLevel {
		t.Errorf("log_level = %q, want default", cfg.Server.LogLevel)
	}
}

func TestLoadValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			"missing socket",
			"[[target]]\ntimeout = \"5s\"\n",
			"socket is required",
		},
		{
			"bad timeout",
			"[[target]]\nsocket = \"/run/kea.sock\"\ntimeout = \"soon\"\n",
			"invalid timeout",
		},
		{
			"auth without username",
			"[server.auth]\nenabled = true\npassword_hash = \"x\"\n",
			"username is required",
		},
		{
			"auth without hash",
			"[server.auth]\nenabled = true\nusername = \"u\"\n",
			"password_hash is required",
		},
		{
			"relative metrics path",
			"[server]\nmetrics_path = \"metrics\"\n",
			"must start with '/'",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Load accepted an invalid config")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Load accepted a missing file")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Server.ListenAddress != DefaultListenAddress {
		t.Errorf("listen_address = %q, want default", cfg.Server.ListenAddress)
	}
	if len(cfg.Targets) != 0 {
		t.Errorf("got %d targets, want 0", len(cfg.Targets))
	}
}
