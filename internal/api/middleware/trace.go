package middleware

import (
	"log/slog"
	"net/http"

	"github.com/glossa-app/glossa-api/internal/api/shared"
	"github.com/glossa-app/glossa-api/internal/platform/logger"
)

// TraceMiddleware assigns a trace ID to every request and stores a
// trace-scoped logger in the context so downstream handlers and services
// log with the same trace_id attribute.
// Apply it early in the middleware chain.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := slog.With(slog.String("trace_id", traceID))
		ctx = logger.WithLogger(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
