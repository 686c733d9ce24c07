// Package logging provides a thin global wrapper around zap.Logger so
// the engine, the session ledger, and the CLI can log without passing a
// logger through every call. Production code calls Set once during
// startup (see cmd/pted/root.go); tests may swap the logger without a
// data race.
package logging

import (
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

var l atomic.Pointer[zap.Logger]

// Set installs logger as the global logger. A nil logger installs
// zap.NewNop() instead of panicking.
func Set(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	l.Store(logger)
}

// Logger returns the globally registered logger, installing a no-op
// logger on first use if none has been set.
func Logger() *zap.Logger {
	if logger := l.Load(); logger != nil {
		return logger
	}
	nop := zap.NewNop()
	l.Store(nop)
	return nop
}

// Sugar is shorthand for Logger().Sugar().
func Sugar() *zap.SugaredLogger { return Logger().Sugar() }

// New builds a zap.Logger from the given level and format ("console" or
// "json"), matching the two formats exposed through config.
func New(level string, format string) (*zap.Logger, error) {
	var cfg zap.Config
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg.Level = lvl

	return cfg.Build()
}
