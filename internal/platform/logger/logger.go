package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/storefront-api/internal/config"
)

// ParseLevel converts a configured level name into a slog.Level.
// Unknown names fall back to info and report ok=false.
func ParseLevel(name string) (level slog.Level, ok bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// New creates a JSON logger writing to out at the level named in cfg.
func New(cfg config.ServerConfig, out io.Writer) *slog.Logger {
	level, ok := ParseLevel(cfg.LogLevel)
	l := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
	if !ok {
		l.Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}
	return l
}

// Setup initializes the application's logger from the server configuration,
// writes to stdout, and installs it as the slog default so package-level
// slog calls share the same handler.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	l := New(cfg, os.Stdout)
	slog.SetDefault(l)
	return l, nil
}
