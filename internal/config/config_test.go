package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(filepath.Join(dir, "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Default()
	if cfg.Engine.BufferCapacity != want.Engine.BufferCapacity {
		t.Fatalf("BufferCapacity = %d, want %d", cfg.Engine.BufferCapacity, want.Engine.BufferCapacity)
	}
	if cfg.Logging.Level != want.Logging.Level || cfg.Logging.Format != want.Logging.Format {
		t.Fatalf("Logging = %+v, want %+v", cfg.Logging, want.Logging)
	}
}

func TestLoadOverridesFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pted.toml")
	toml := `
[engine]
buffer_capacity = 4096

[logging]
level = "debug"
format = "json"
`
	if err := os.WriteFile(path, []byte(toml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Engine.BufferCapacity != 4096 {
		t.Fatalf("BufferCapacity = %d, want 4096", cfg.Engine.BufferCapacity)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("Logging = %+v, want debug/json", cfg.Logging)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PTED_LOG_LEVEL", "warn")

	cfg, err := Load(filepath.Join(dir, "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("Logging.Level = %q, want %q", cfg.Logging.Level, "warn")
	}
}
