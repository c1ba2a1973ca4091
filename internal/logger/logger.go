// Package logger provides logging utilities for durfmt using the bullets library.
//
// The CLI writes formatted durations to stdout, so every logger built here
// writes to stderr. Library packages log through *slog.Logger; Slog returns
// one configured with the same level names.
//
// Usage:
//
//	log := logger.NewLogger("debug")
//	log.Debug("Loading configuration")
//
//	silentLog := logger.NoLogger() // Suppresses all output
package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/sgaunet/bullets"
)

// NewLogger creates a new logger that writes to stderr at the specified level.
//
// Parameters:
//   - logLevel: one of "debug", "info", "warn", "error" (defaults to "info" for unknown values)
func NewLogger(logLevel string) *bullets.Logger {
	return newLogger(os.Stderr, logLevel)
}

func newLogger(w io.Writer, logLevel string) *bullets.Logger {
	var level bullets.Level
	switch logLevel {
	case "debug":
		level = bullets.DebugLevel
	case "warn":
		level = bullets.WarnLevel
	case "error":
		level = bullets.ErrorLevel
	default:
		level = bullets.InfoLevel
	}
	logger := bullets.New(w)
	logger.SetLevel(level)
	return logger
}

// NoLogger creates a logger that suppresses all output by setting the level to Fatal.
// Useful for tests and silent operation.
func NoLogger() *bullets.Logger {
	logger := bullets.New(io.Discard)
	logger.SetLevel(bullets.FatalLevel)
	return logger
}

// Slog returns a text *slog.Logger writing to stderr at the given level, for
// the library packages that trace through log/slog.
func Slog(logLevel string) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: SlogLevel(logLevel)}))
}

// SlogLevel maps a level name onto a slog.Level, "info" for unknown values.
func SlogLevel(logLevel string) slog.Level {
	switch logLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
