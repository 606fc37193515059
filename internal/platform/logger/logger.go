// Package logger provides structured logging functionality for the application.
package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/ADNAN-ZEYA/Website-Builder/internal/config"
)

// contextKey is the private key type for logger context values.
type contextKey struct{}

// Setup initializes the application's logging system from the server
// configuration: a JSON handler writing to stdout at the configured level,
// installed as the process default so the slog package functions work
// everywhere.
func Setup(cfg config.ServerConfig) *slog.Logger {
	level := parseLevel(cfg.LogLevel)

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})

	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}

// parseLevel maps a configured level name (case-insensitive) to a slog
// level, defaulting to info for anything unrecognized.
func parseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		slog.Warn("invalid log level configured, using default level",
			"configured_level", name,
			"default_level", "info")
		return slog.LevelInfo
	}
}

// WithLogger returns a context carrying the given logger, typically one
// enriched with request-scoped attributes such as a trace ID.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, log)
}

// FromContext retrieves the request-scoped logger from the context, falling
// back to the process default when none was set.
func FromContext(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return log
	}
	return slog.Default()
}
