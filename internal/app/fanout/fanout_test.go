package fanout_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/workitem-service/internal/app/fanout"
)

var errOdd = errors.New("odd")

func double(_ context.Context, n int) (int, error) {
	if n%2 != 0 {
		return 0, errOdd
	}
	return n * 2, nil
}

func TestRun_ResultsFollowInputOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		limit int
		items []int
		want  []fanout.Result[int]
	}{
		{"empty", 4, []int{}, []fanout.Result[int]{}},
		{"all succeed", 2, []int{2, 4, 6}, []fanout.Result[int]{{Value: 4}, {Value: 8}, {Value: 12}}},
		{"mixed", 3, []int{2, 3, 4}, []fanout.Result[int]{{Value: 4}, {Err: errOdd}, {Value: 8}}},
		{"limit above len", 100, []int{8}, []fanout.Result[int]{{Value: 16}}},
		{"zero limit", 0, []int{2, 1}, []fanout.Result[int]{{Value: 4}, {Err: errOdd}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fanout.Run(context.Background(), tt.limit, tt.items, double))
		})
	}
}

func TestRun_SlowItemsKeepTheirSlot(t *testing.T) {
	t.Parallel()

	delays := []time.Duration{30 * time.Millisecond, time.Millisecond, 15 * time.Millisecond}

	results := fanout.Run(context.Background(), len(delays), delays,
		func(_ context.Context, d time.Duration) (time.Duration, error) {
			time.Sleep(d)
			return d, nil
		})

	for i, r := range results {
		require.NoError(t, r.Err)
		assert.Equal(t, delays[i], r.Value, "index %d", i)
	}
}

func TestRun_NeverExceedsLimit(t *testing.T) {
	t.Parallel()

	for _, limit := range []int{-1, 1, 3} {
		t.Run("", func(t *testing.T) {
			t.Parallel()

			var inFlight, peak atomic.Int32
			items := make([]struct{}, 12)

			fanout.Run(context.Background(), limit, items, func(context.Context, struct{}) (struct{}, error) {
				n := inFlight.Add(1)
				defer inFlight.Add(-1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				return struct{}{}, nil
			})

			assert.LessOrEqual(t, peak.Load(), int32(max(limit, 1)))
			assert.Positive(t, peak.Load())
		})
	}
}

func TestRun_CancelSettlesWaitingItems(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	results := fanout.Run(ctx, 1, []int{1, 2, 3, 4}, func(context.Context, int) (int, error) {
		calls.Add(1)
		cancel()
		time.Sleep(20 * time.Millisecond)
		return 1, nil
	})

	assert.Equal(t, int32(1), calls.Load())

	var ran, canceled int
	for _, r := range results {
		switch {
		case r.Err == nil:
			ran++
		case errors.Is(r.Err, context.Canceled):
			canceled++
		}
	}
	assert.Equal(t, 1, ran)
	assert.Equal(t, 3, canceled)
}

func TestRun_DoneContextRunsNothing(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), -time.Second)
	defer cancel()

	results := fanout.Run(ctx, 2, []int{2, 4, 6}, func(context.Context, int) (int, error) {
		t.Error("fn called after the deadline")
		return 0, nil
	})

	for _, r := range results {
		assert.ErrorIs(t, r.Err, context.DeadlineExceeded)
	}
}

func TestRun_FnSeesCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	results := fanout.Run(ctx, 1, []int{1}, func(ctx context.Context, _ int) (int, error) {
		cancel()
		<-ctx.Done()
		return 0, ctx.Err()
	})

	assert.ErrorIs(t, results[0].Err, context.Canceled)
}
