// Package config handles loading of pted's TOML configuration file.
package config

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config holds process-wide settings that are not a property of any one
// open document: the insertion buffer chain's growth size, the session
// ledger, and logging.
type Config struct {
	Engine  EngineConfig  `toml:"engine"`
	Logging LoggingConfig `toml:"logging"`
	Session SessionConfig `toml:"session"`
}

// EngineConfig configures the piece table's storage.
type EngineConfig struct {
	// BufferCapacity is the size, in bytes, of each insertion buffer
	// allocated by the engine's region.Store chain.
	BufferCapacity int `toml:"buffer_capacity"`
}

// LoggingConfig configures the global zap logger installed at startup.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// SessionConfig configures the recent-files ledger.
type SessionConfig struct {
	Path     string `toml:"path"`
	MaxFiles int    `toml:"max_files"`
}

// Default returns the configuration pted runs with when no file is
// found at the requested path.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			BufferCapacity: 1 << 20,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Session: SessionConfig{
			Path:     defaultSessionPath(),
			MaxFiles: 20,
		},
	}
}

// Load reads path as TOML over Default, then applies PTED_-prefixed
// environment variable overrides. A missing file is not an error: the
// defaults (with env overrides) are returned as-is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv("PTED_ENGINE_BUFFER_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Engine.BufferCapacity = n
		}
	}
	if v := os.Getenv("PTED_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("PTED_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("PTED_SESSION_PATH"); v != "" {
		cfg.Session.Path = v
	}

	return cfg, nil
}

func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".pted_session.json"
	}
	return dir + "/pted/session.json"
}
