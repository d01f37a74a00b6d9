package middleware

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/workitem-service/internal/adapters/http/dto"
)

// Timeout gives each request a deadline of d. The handler runs on its own
// goroutine against a buffered writer. If it finishes in time the buffer is
// copied out. Otherwise the client gets a problem+json 504 and later writes
// from the handler fail with http.ErrHandlerTimeout.
//
// A panic in the handler is re-raised on the serving goroutine so Recovery
// still sees it.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			tw := &timeoutWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicked <- p
						return
					}
					close(done)
				}()
				next.ServeHTTP(tw, r.WithContext(ctx))
			}()

			select {
			case p := <-panicked:
				panic(p)
			case <-done:
				tw.commit(w)
			case <-ctx.Done():
				tw.expire()
				dto.WriteErrorResponse(w, r, fmt.Errorf("request exceeded %s: %w", d, context.DeadlineExceeded))
			}
		})
	}
}

// timeoutWriter holds the handler's response until Timeout decides whether
// it is sent.
type timeoutWriter struct {
	header http.Header

	mu      sync.Mutex
	body    bytes.Buffer
	status  int
	expired bool
}

func (tw *timeoutWriter) Header() http.Header {
	return tw.header
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.expired || tw.status != 0 {
		return
	}
	tw.status = code
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.expired {
		return 0, http.ErrHandlerTimeout
	}
	if tw.status == 0 {
		tw.status = http.StatusOK
	}
	return tw.body.Write(b)
}

func (tw *timeoutWriter) expire() {
	tw.mu.Lock()
	tw.expired = true
	tw.mu.Unlock()
}

// commit writes the buffered response to w. The handler goroutine has
// returned, so header is no longer mutated.
func (tw *timeoutWriter) commit(w http.ResponseWriter) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	maps.Copy(w.Header(), tw.header)
	if tw.status != 0 {
		w.WriteHeader(tw.status)
	}
	if tw.body.Len() > 0 {
		_, _ = w.Write(tw.body.Bytes())
	}
}
