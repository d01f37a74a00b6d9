// Package appctx provides request-scoped memoization for outbound reads.
//
// A RequestContext is created per inbound request and carried on the
// context.Context. Adapters that load downstream data wrap their fetches in
// GetOrFetch so that the same resource is requested at most once per
// request, even when several work items in a batch share a parent:
//
//	ctx = appctx.WithRequestContext(ctx, appctx.New())
//
//	project, err := appctx.GetOrFetch(ctx, "project:7", fetchProject)
//
// Without a RequestContext on ctx, GetOrFetch calls the fetch function
// directly.
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrTypeMismatch is returned by GetOrFetch when a cached value's type does
// not match the requested type T. This indicates a programming error where
// the same cache key is used with different types.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

// errFetchAborted is seen by waiters when the fetch they waited on panicked.
var errFetchAborted = errors.New("appctx: fetch aborted")

type requestContextKey struct{}

// RequestContext is a request-scoped cache of fetched values. It is safe for
// concurrent use. Only successful fetches are retained; a failed fetch is
// retried by the next caller.
type RequestContext struct {
	mu    sync.Mutex
	cache map[string]*cacheEntry
}

// cacheEntry is filled exactly once. ready is closed when value and err are
// final, so concurrent callers for the same key share one fetch.
type cacheEntry struct {
	ready chan struct{}
	value any
	err   error
}

// New creates an empty RequestContext.
func New() *RequestContext {
	return &RequestContext{cache: make(map[string]*cacheEntry)}
}

// WithRequestContext returns a copy of ctx carrying rc.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// FromContext returns the RequestContext carried by ctx, or nil.
func FromContext(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(requestContextKey{}).(*RequestContext)
	return rc
}

// Len returns the number of cached keys.
func (rc *RequestContext) Len() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return len(rc.cache)
}

// GetOrFetch returns the value cached under key in ctx's RequestContext, or
// calls fetchFn and caches its result. Concurrent callers for the same key
// wait for the first fetch instead of issuing their own.
//
// The same key must always be used with the same type T. If a cached value
// exists but its type does not match T, GetOrFetch returns ErrTypeMismatch.
func GetOrFetch[T any](ctx context.Context, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	rc := FromContext(ctx)
	if rc == nil {
		return fetchFn(ctx)
	}

	rc.mu.Lock()
	entry, found := rc.cache[key]
	if !found {
		entry = &cacheEntry{ready: make(chan struct{}), err: errFetchAborted}
		rc.cache[key] = entry
	}
	rc.mu.Unlock()

	var zero T
	if found {
		select {
		case <-entry.ready:
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	} else {
		rc.fill(ctx, key, entry, func(ctx context.Context) (any, error) { return fetchFn(ctx) })
	}

	if entry.err != nil {
		return zero, entry.err
	}
	v, ok := entry.value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
	}
	return v, nil
}

func (rc *RequestContext) fill(ctx context.Context, key string, entry *cacheEntry, fetch func(context.Context) (any, error)) {
	defer func() {
		if entry.err != nil {
			rc.mu.Lock()
			if rc.cache[key] == entry {
				delete(rc.cache, key)
			}
			rc.mu.Unlock()
		}
		close(entry.ready)
	}()
	entry.value, entry.err = fetch(ctx)
}

// Invalidate drops key from ctx's RequestContext so the next GetOrFetch
// fetches again. Callers already waiting on an in-flight fetch still receive
// its result. It is a no-op without a RequestContext.
func Invalidate(ctx context.Context, key string) {
	rc := FromContext(ctx)
	if rc == nil {
		return
	}
	rc.mu.Lock()
	delete(rc.cache, key)
	rc.mu.Unlock()
}
