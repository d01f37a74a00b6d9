// Package health runs the readiness checks registered for the service's
// dependencies: the board API client, each webhook target and the event
// store database.
package health

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/jsamuelsen11/workitem-service/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// DefaultCheckTimeout bounds a single check when no other timeout is set.
const DefaultCheckTimeout = 2 * time.Second

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout bounds each check. A non-positive d keeps the default.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.timeout = d
		}
	}
}

type entry struct {
	name    string
	checker ports.HealthChecker
}

// Registry holds named checkers and runs them concurrently. It is safe for
// concurrent use.
type Registry struct {
	timeout time.Duration

	mu      sync.RWMutex
	entries []entry
	names   map[string]int
}

// New returns an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		timeout: DefaultCheckTimeout,
		names:   make(map[string]int),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds checker under its Name. A repeated name gets a numeric
// suffix ("webhook:hooks.example.com#2") so no result is overwritten.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := checker.Name()
	r.names[name]++
	if n := r.names[name]; n > 1 {
		name += "#" + strconv.Itoa(n)
	}
	r.entries = append(r.entries, entry{name: name, checker: checker})
}

// CheckAll runs every check in parallel, each under its own timeout, and
// returns the results by name. A nil value means healthy. A check that
// outlives its timeout is reported as failed without waiting for it.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	entries := append([]entry(nil), r.entries...)
	r.mu.RUnlock()

	errs := make([]error, len(entries))
	var wg sync.WaitGroup
	for i, e := range entries {
		wg.Go(func() {
			errs[i] = r.check(ctx, e.checker)
		})
	}
	wg.Wait()

	results := make(map[string]error, len(entries))
	for i, e := range entries {
		results[e.name] = errs[i]
	}
	return results
}

func (r *Registry) check(ctx context.Context, c ports.HealthChecker) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("health check not started: %w", err)
	}

	done := make(chan error, 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- fmt.Errorf("health check panicked: %v", p)
			}
		}()
		done <- c.HealthCheck(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("health check did not finish: %w", ctx.Err())
	}
}
