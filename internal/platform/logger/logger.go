// Package logger provides structured logging functionality for the
// application, built on log/slog with a JSON handler and helpers for
// carrying a request-scoped logger through context.
package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/glossa-app/glossa-api/internal/config"
)

// contextKey is a private type for context keys defined in this package.
type contextKey int

// loggerKey is the context key under which a request-scoped logger travels.
const loggerKey contextKey = iota

// Setup initializes the application's logging system from configuration.
// It creates a structured JSON logger with the configured level, sets it as
// the process default and returns it.
func Setup(cfg config.ServerConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
		tmp := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmp.Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// WithLogger returns a new context carrying the given logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext retrieves the logger from the context, falling back to the
// process default logger when none was attached.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// FromContextOrDefault retrieves the logger from the context, falling back
// to the provided default. Components use this so their own component-tagged
// logger wins when the request did not attach one.
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	if def != nil {
		return def
	}
	return slog.Default()
}
