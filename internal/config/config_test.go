package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func lookup(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

// TestFromEnv_Defaults tests an empty environment.
func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(lookup(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != DefaultAddr || cfg.DBPath != DefaultDBPath || cfg.RateLimit != DefaultRateLimit {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.LogLevel != "info" || cfg.Telemetry != TelemetryOff || cfg.Production() {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

// TestFromEnv_Values tests that every variable is read.
func TestFromEnv_Values(t *testing.T) {
	cfg, err := FromEnv(lookup(map[string]string{
		EnvEnv:           "production",
		EnvAddr:          ":9000",
		EnvDBPath:        "/tmp/w.db",
		EnvLogLevel:      "DEBUG",
		EnvRateLimit:     "25",
		EnvSlowQueryMs:   "75",
		EnvSlowRequestMs: "300",
		EnvTelemetry:     "stdout",
		EnvResendFrom:    "plans@example.com",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Production() || cfg.Addr != ":9000" || cfg.DBPath != "/tmp/w.db" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.LogLevel != "debug" || cfg.RateLimit != 25 || cfg.Telemetry != TelemetryStdout {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.SlowQuery != 75*time.Millisecond || cfg.SlowRequest != 300*time.Millisecond {
		t.Errorf("thresholds = %v / %v", cfg.SlowQuery, cfg.SlowRequest)
	}
}

// TestFromEnv_Invalid tests rejection of malformed values.
func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{EnvRateLimit, "fast"},
		{EnvRateLimit, "0"},
		{EnvSlowQueryMs, "-5"},
		{EnvLogLevel, "verbose"},
		{EnvTelemetry, "jaeger"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			_, err := FromEnv(lookup(map[string]string{tt.key: tt.value}))
			if err == nil || !strings.Contains(err.Error(), tt.key) {
				t.Errorf("err = %v, want error naming %s", err, tt.key)
			}
		})
	}
}

// TestLoad_DotEnv tests that a .env file is read and the environment wins.
func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("WORKOUT_ADDR=:7000\nWORKOUT_DB_PATH=from-file.db\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	t.Setenv(EnvDBPath, "from-env.db")
	// t.Setenv restores the original value on cleanup; unset so the file can supply it.
	t.Setenv(EnvAddr, "")
	os.Unsetenv(EnvAddr)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":7000" {
		t.Errorf("Addr = %q, want value from .env", cfg.Addr)
	}
	if cfg.DBPath != "from-env.db" {
		t.Errorf("DBPath = %q, want environment to win", cfg.DBPath)
	}
}

// TestLoad_NoDotEnv tests that a missing .env is not an error.
func TestLoad_NoDotEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, err := Load(); err != nil {
		t.Errorf("Load without .env: %v", err)
	}
}
