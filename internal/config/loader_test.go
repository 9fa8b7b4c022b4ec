package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadWritesDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, resolved, err := Load(nil, path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if resolved != path {
		t.Fatalf("resolved path %q, want %q", resolved, path)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config not written: %v", err)
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "addr: \":9999\"\nrematch_delay: 250ms\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, err := Load(nil, path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9999" {
		t.Fatalf("addr %q, want :9999", cfg.Addr)
	}
	if cfg.RematchDelay != 250*time.Millisecond {
		t.Fatalf("rematch delay %v, want 250ms", cfg.RematchDelay)
	}
	// Untouched keys keep their defaults.
	if cfg.LogLevel != Default().LogLevel {
		t.Fatalf("log level %q, want default", cfg.LogLevel)
	}
}

func TestUpdateFromSkipsZeroValues(t *testing.T) {
	cfg := Default()
	cfg.UpdateFrom(Config{Addr: ":4000"})

	if cfg.Addr != ":4000" {
		t.Fatalf("addr %q, want :4000", cfg.Addr)
	}
	if cfg.DatabasePath != Default().DatabasePath {
		t.Fatalf("database path %q, want default", cfg.DatabasePath)
	}
}
