package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/workitem-service/internal/platform/httpclient"
)

// Header names for request and correlation identifiers.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

// maxIDLength bounds inbound identifiers that are echoed and logged.
const maxIDLength = 128

type idKey int

const (
	requestIDKey idKey = iota
	correlationIDKey
)

// WithRequestID stores id in ctx for this package and for outbound calls
// made through httpclient.
func WithRequestID(ctx context.Context, id string) context.Context {
	return httpclient.WithRequestID(context.WithValue(ctx, requestIDKey, id), id)
}

// RequestIDFromContext returns the request ID, or "" when none is set.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithCorrelationID stores id in ctx for this package and for outbound calls
// made through httpclient.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return httpclient.WithCorrelationID(context.WithValue(ctx, correlationIDKey, id), id)
}

// CorrelationIDFromContext returns the correlation ID, or "" when none is
// set.
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey).(string)
	return id
}

// RequestID adopts a well-formed inbound X-Request-ID or mints a UUID. The
// ID goes into the context and back out on the response.
func RequestID() func(http.Handler) http.Handler {
	return identify(HeaderRequestID, WithRequestID, func(*http.Request) string {
		return uuid.NewString()
	})
}

// CorrelationID adopts a well-formed inbound X-Correlation-ID and otherwise
// reuses the request ID, so it must run after RequestID.
func CorrelationID() func(http.Handler) http.Handler {
	return identify(HeaderCorrelationID, WithCorrelationID, func(r *http.Request) string {
		return RequestIDFromContext(r.Context())
	})
}

func identify(
	header string,
	store func(context.Context, string) context.Context,
	fallback func(*http.Request) string,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(header)
			if !wellFormedID(id) {
				id = fallback(r)
			}
			if id == "" {
				next.ServeHTTP(w, r)
				return
			}
			w.Header().Set(header, id)
			next.ServeHTTP(w, r.WithContext(store(r.Context(), id)))
		})
	}
}

// wellFormedID accepts non-empty printable ASCII without spaces, up to
// maxIDLength bytes.
func wellFormedID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	for i := range len(id) {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}
