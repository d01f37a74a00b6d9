package eventbus

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/workitem-service/internal/domain/event"
)

type recordingSubscriber struct {
	name string
	err  error
	mu   sync.Mutex
	got  []event.Envelope
}

func (s *recordingSubscriber) Name() string { return s.name }

func (s *recordingSubscriber) Handle(_ context.Context, env event.Envelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, env)
	return s.err
}

func (s *recordingSubscriber) received() []event.Envelope {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]event.Envelope(nil), s.got...)
}

type panickingSubscriber struct{}

func (panickingSubscriber) Name() string { return "panicky" }

func (panickingSubscriber) Handle(context.Context, event.Envelope) error {
	panic("subscriber bug")
}

func envelope(id string, subject int64) event.Envelope {
	return event.NewEnvelope(id, event.StoryDone{StoryID: subject, At: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)})
}

func TestBus_DeliversToEverySubscriber(t *testing.T) {
	t.Parallel()

	bus := New(nil)
	a := &recordingSubscriber{name: "a"}
	b := &recordingSubscriber{name: "b"}
	bus.Subscribe(a)
	bus.Subscribe(b)

	require.NoError(t, bus.Publish(context.Background(), envelope("e1", 1)))

	for _, sub := range []*recordingSubscriber{a, b} {
		got := sub.received()
		require.Len(t, got, 1, sub.name)
		assert.Equal(t, "e1", got[0].ID)
	}
}

func TestBus_PreservesOrderPerSubscriber(t *testing.T) {
	t.Parallel()

	bus := New(nil)
	sub := &recordingSubscriber{name: "ordered"}
	bus.Subscribe(sub)

	for i := range 5 {
		require.NoError(t, bus.Publish(context.Background(), envelope("e", int64(i))))
	}

	got := sub.received()
	require.Len(t, got, 5)
	for i, env := range got {
		assert.Equal(t, int64(i), env.SubjectID)
	}
}

func TestBus_SurvivesSubscriberFailure(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	bus := New(slog.New(slog.NewJSONHandler(&logs, nil)))
	failing := &recordingSubscriber{name: "webhook", err: errors.New("connection refused")}
	healthy := &recordingSubscriber{name: "log"}
	bus.Subscribe(failing)
	bus.Subscribe(panickingSubscriber{})
	bus.Subscribe(healthy)

	require.NoError(t, bus.Publish(context.Background(), envelope("e1", 1)))

	assert.Len(t, healthy.received(), 1)
	assert.Contains(t, logs.String(), `"subscriber":"webhook"`)
	assert.Contains(t, logs.String(), `"subscriber":"panicky"`)
	assert.Contains(t, logs.String(), "subscriber panicked")
}

func TestBus_Unsubscribe(t *testing.T) {
	t.Parallel()

	bus := New(nil)
	sub := &recordingSubscriber{name: "temp"}
	unsubscribe := bus.Subscribe(sub)
	assert.Equal(t, 1, bus.Subscribers())

	unsubscribe()
	unsubscribe()
	assert.Equal(t, 0, bus.Subscribers())

	require.NoError(t, bus.Publish(context.Background(), envelope("e1", 1)))
	assert.Empty(t, sub.received())
}

func TestBus_PublishAfterClose(t *testing.T) {
	t.Parallel()

	bus := New(nil)
	sub := &recordingSubscriber{name: "a"}
	bus.Subscribe(sub)

	require.NoError(t, bus.Close())
	require.NoError(t, bus.Close())

	err := bus.Publish(context.Background(), envelope("e1", 1))
	assert.ErrorIs(t, err, ErrBusClosed)
	assert.Empty(t, sub.received())
}

func TestBus_ConcurrentPublishAndSubscribe(t *testing.T) {
	t.Parallel()

	bus := New(nil, WithMaxWorkers(2))
	var delivered atomic.Int64
	counter := subscriberFunc(func(context.Context, event.Envelope) error {
		delivered.Add(1)
		return nil
	})
	bus.Subscribe(counter)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Go(func() {
			_ = bus.Publish(context.Background(), envelope("e", int64(i)))
		})
		wg.Go(func() {
			unsubscribe := bus.Subscribe(&recordingSubscriber{name: "late"})
			unsubscribe()
		})
	}
	wg.Wait()

	assert.Equal(t, int64(20), delivered.Load())
	assert.Equal(t, 1, bus.Subscribers())
}

func TestLogSubscriber_Handle(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sub := NewLogSubscriber(slog.New(slog.NewJSONHandler(&buf, nil)))
	assert.Equal(t, "log", sub.Name())

	require.NoError(t, sub.Handle(context.Background(), envelope("e1", 42)))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, event.NameStoryDone, entry["event"])
	assert.Equal(t, "e1", entry["event_id"])
	assert.InDelta(t, 42, entry["subject_id"], 0)
}

type subscriberFunc func(context.Context, event.Envelope) error

func (subscriberFunc) Name() string { return "func" }

func (f subscriberFunc) Handle(ctx context.Context, env event.Envelope) error { return f(ctx, env) }
