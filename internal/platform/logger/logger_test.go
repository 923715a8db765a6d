package logger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glossa-app/glossa-api/internal/config"
)

func TestSetupReturnsLogger(t *testing.T) {
	testCases := []struct {
		name  string
		level string
	}{
		{name: "debug level", level: "debug"},
		{name: "info level", level: "info"},
		{name: "warn level", level: "warn"},
		{name: "error level", level: "error"},
		{name: "invalid level falls back to info", level: "verbose"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			logger := Setup(config.ServerConfig{Port: 8080, LogLevel: tc.level})
			require.NotNil(t, logger)
			assert.Same(t, logger, slog.Default())
		})
	}
}

func TestLoggerContextRoundTrip(t *testing.T) {
	t.Parallel()

	base := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := WithLogger(context.Background(), base)

	assert.Same(t, base, FromContext(ctx))
	assert.Same(t, base, FromContextOrDefault(ctx, nil))

	// Without an attached logger the provided default wins.
	def := slog.New(slog.NewTextHandler(io.Discard, nil))
	assert.Same(t, def, FromContextOrDefault(context.Background(), def))
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}
