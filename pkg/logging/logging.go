// Package logging installs the tint slog handler used by the tipsplit server.
//
// The level name comes from config.Config.LogLevel (LOG_LEVEL), so the
// package itself never reads the environment. Records go to stderr with
// source locations; RPC interceptors add procedure and session_id
// attributes on top.
//
//	logging.Setup(cfg.LogLevel)
package logging

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs the default logger at the named level (see ParseLevel).
func Setup(level string) {
	slog.SetDefault(New(ParseLevel(level)))
}

// New returns a tint-backed logger writing to stderr at level.
func New(level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  true,
	}))
}

// ParseLevel maps debug, info, warn or error (any case) to a slog.Level.
// Unknown names fall back to INFO.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
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
