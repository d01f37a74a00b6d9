package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/workitem-service/internal/adapters/http/dto"
)

var errInternalServer = errors.New("internal server error")

// Recovery turns a handler panic into a problem+json 500 and logs the panic
// value with its stack. Nothing is written when the response has already
// started. http.ErrAbortHandler is re-panicked for net/http to handle.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := record(w)

			defer func() {
				p := recover()
				if p == nil {
					return
				}
				if p == http.ErrAbortHandler { //nolint:errorlint // sentinel panic value
					panic(p)
				}

				logger.LogAttrs(r.Context(), slog.LevelError, "panic recovered",
					slog.Any("panic", p),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)
				if !rec.written {
					dto.WriteErrorResponse(rec, r, errInternalServer)
				}
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
