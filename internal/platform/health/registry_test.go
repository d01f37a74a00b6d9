package health_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/workitem-service/internal/platform/health"
	"github.com/jsamuelsen11/workitem-service/mocks"
)

// funcChecker is a hand-written checker for cases where the check outlives
// the test and a mock would record calls too late.
type funcChecker struct {
	name  string
	check func(context.Context) error
}

func (f funcChecker) Name() string                          { return f.name }
func (f funcChecker) HealthCheck(ctx context.Context) error { return f.check(ctx) }

func TestCheckAll_Empty(t *testing.T) {
	t.Parallel()

	results := health.New().CheckAll(context.Background())
	require.NotNil(t, results)
	assert.Empty(t, results)
}

func TestCheckAll_ReportsEachChecker(t *testing.T) {
	t.Parallel()

	refused := errors.New("connection refused")

	board := mocks.NewMockHealthChecker(t)
	board.EXPECT().Name().Return("board-api")
	board.EXPECT().HealthCheck(mock.Anything).Return(refused)

	db := mocks.NewMockHealthChecker(t)
	db.EXPECT().Name().Return("database")
	db.EXPECT().HealthCheck(mock.Anything).Return(nil)

	r := health.New()
	r.Register(board)
	r.Register(db)

	results := r.CheckAll(context.Background())
	require.Len(t, results, 2)
	assert.NoError(t, results["database"])
	assert.ErrorIs(t, results["board-api"], refused)
}

func TestCheckAll_ChecksCarryDeadline(t *testing.T) {
	t.Parallel()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return("board-api")
	c.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	})).Return(nil)

	r := health.New(health.WithCheckTimeout(time.Second))
	r.Register(c)

	assert.NoError(t, r.CheckAll(context.Background())["board-api"])
}

func TestCheckAll_CanceledContextSkipsChecks(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return("board-api")

	r := health.New()
	r.Register(c)

	assert.ErrorIs(t, r.CheckAll(ctx)["board-api"], context.Canceled)
}

func TestCheckAll_SlowCheckTimesOut(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	r := health.New(health.WithCheckTimeout(30 * time.Millisecond))
	r.Register(funcChecker{name: "webhook:hooks.example.com", check: func(context.Context) error {
		<-release
		return nil
	}})
	r.Register(funcChecker{name: "database", check: func(context.Context) error { return nil }})

	start := time.Now()
	results := r.CheckAll(context.Background())

	assert.Less(t, time.Since(start), time.Second)
	assert.ErrorIs(t, results["webhook:hooks.example.com"], context.DeadlineExceeded)
	assert.NoError(t, results["database"])
}

func TestCheckAll_RunsConcurrently(t *testing.T) {
	t.Parallel()

	const n = 5
	var ready sync.WaitGroup
	ready.Add(n)

	r := health.New(health.WithCheckTimeout(time.Second))
	for i := range n {
		r.Register(funcChecker{name: fmt.Sprintf("c%d", i), check: func(ctx context.Context) error {
			ready.Done()
			ready.Wait()
			return nil
		}})
	}

	for name, err := range r.CheckAll(context.Background()) {
		assert.NoError(t, err, name)
	}
}

func TestCheckAll_PanickingCheck(t *testing.T) {
	t.Parallel()

	r := health.New()
	r.Register(funcChecker{name: "broken", check: func(context.Context) error { panic("nil pool") }})

	err := r.CheckAll(context.Background())["broken"]
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil pool")
}

func TestRegister_DuplicateNamesAreSuffixed(t *testing.T) {
	t.Parallel()

	failure := errors.New("503 from hooks.example.com")

	r := health.New()
	r.Register(funcChecker{name: "webhook:hooks.example.com", check: func(context.Context) error { return nil }})
	r.Register(funcChecker{name: "webhook:hooks.example.com", check: func(context.Context) error { return failure }})

	results := r.CheckAll(context.Background())
	require.Len(t, results, 2)
	assert.NoError(t, results["webhook:hooks.example.com"])
	assert.ErrorIs(t, results["webhook:hooks.example.com#2"], failure)
}

func TestRegistry_ConcurrentRegisterAndCheck(t *testing.T) {
	t.Parallel()

	r := health.New()
	var wg sync.WaitGroup
	for i := range 50 {
		if i%2 == 0 {
			wg.Go(func() {
				r.Register(funcChecker{name: "checker", check: func(context.Context) error { return nil }})
			})
		} else {
			wg.Go(func() { r.CheckAll(context.Background()) })
		}
	}
	wg.Wait()

	assert.Len(t, r.CheckAll(context.Background()), 25)
}
