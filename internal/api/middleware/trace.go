// Package middleware provides HTTP middleware shared by all routes.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ADNAN-ZEYA/Website-Builder/internal/api/shared"
	"github.com/ADNAN-ZEYA/Website-Builder/internal/platform/logger"
)

// Trace attaches a trace ID to the request context and a trace-scoped logger
// alongside it, then logs request completion with timing. Applied early so
// every downstream handler and error response can correlate on the same ID.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := slog.With(slog.String("trace_id", traceID))
		ctx = logger.WithLogger(ctx, log)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(ctx))

		log.Debug("request completed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.Duration("duration", time.Since(start)))
	})
}
