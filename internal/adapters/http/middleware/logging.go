package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/workitem-service/internal/platform/logging"
)

// Logging derives a request logger carrying the request and correlation IDs,
// stores it with logging.WithLogger and writes one completion record per
// request. Request headers are logged at debug level through the redacting
// handler.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			reqLogger := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, reqLogger)

			if reqLogger.Enabled(ctx, slog.LevelDebug) {
				reqLogger.DebugContext(ctx, "request started",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					logging.Headers(r.Header),
				)
			}

			rec := record(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			reqLogger.LogAttrs(ctx, completionLevel(rec.status), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(r)),
				slog.Int("status", rec.status),
				slog.Int64("bytes", rec.bytes),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func completionLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
