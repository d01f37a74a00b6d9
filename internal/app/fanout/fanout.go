// Package fanout applies a function to every element of a slice on a bounded
// number of goroutines. Batch processing and event delivery share it.
package fanout

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Result is the outcome for one input element: Value when Err is nil.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn once per item with at most limit calls in flight and returns
// the results indexed like items. A limit below 1 means 1.
//
// Items that have not started when ctx ends get ctx.Err() without calling fn.
// Calls already started run to completion, so fn should observe ctx itself.
// Run returns only after every item is settled.
func Run[T, R any](ctx context.Context, limit int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	sem := semaphore.NewWeighted(int64(max(limit, 1)))

	var wg sync.WaitGroup
	for i := range items {
		wg.Go(func() {
			if err := sem.Acquire(ctx, 1); err != nil {
				results[i].Err = err
				return
			}
			defer sem.Release(1)

			// Acquire can succeed on an already finished context.
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return
			}
			results[i].Value, results[i].Err = fn(ctx, items[i])
		})
	}
	wg.Wait()

	return results
}
