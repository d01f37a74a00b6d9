// Package eventbus delivers published event envelopes to in-process
// subscribers: the log subscriber, the PostgreSQL event store and webhooks.
//
// Delivery is synchronous from the caller's point of view. Publish hands the
// envelope to every subscriber concurrently, waits for all of them and only
// logs subscriber failures, so one broken webhook never fails the work item
// that raised the event.
package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/jsamuelsen11/workitem-service/internal/app/fanout"
	"github.com/jsamuelsen11/workitem-service/internal/domain/event"
	"github.com/jsamuelsen11/workitem-service/internal/ports"
)

// Compile-time check that Bus implements ports.EventPublisher.
var _ ports.EventPublisher = (*Bus)(nil)

// ErrBusClosed is returned by Publish after Close.
var ErrBusClosed = errors.New("event bus closed")

const defaultMaxWorkers = 8

// Subscriber receives envelopes from the bus.
type Subscriber interface {
	// Name identifies the subscriber in logs.
	Name() string
	// Handle processes one envelope. The envelope is shared with other
	// subscribers and must not be modified.
	Handle(ctx context.Context, env event.Envelope) error
}

// Option configures a Bus.
type Option func(*Bus)

// WithMaxWorkers bounds how many subscribers handle one envelope at once.
// Values below 1 are ignored.
func WithMaxWorkers(n int) Option {
	return func(b *Bus) {
		if n >= 1 {
			b.maxWorkers = n
		}
	}
}

// Bus is an in-process fan-out publisher.
type Bus struct {
	subs       subscriberSet
	closed     atomic.Bool
	maxWorkers int
	logger     *slog.Logger
}

// New creates an empty Bus. A nil logger discards output.
func New(logger *slog.Logger, opts ...Option) *Bus {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	b := &Bus{maxWorkers: defaultMaxWorkers, logger: logger}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers sub and returns a function that removes it again.
func (b *Bus) Subscribe(sub Subscriber) (unsubscribe func()) {
	id := b.subs.add(sub)
	b.logger.Debug("event subscriber registered", slog.String("subscriber", sub.Name()))
	return func() { b.subs.remove(id) }
}

// Subscribers returns the number of registered subscribers.
func (b *Bus) Subscribers() int {
	return b.subs.len()
}

// Publish delivers env to every subscriber and waits for them. Subscriber
// errors and panics are logged, not returned. The only error is ErrBusClosed.
func (b *Bus) Publish(ctx context.Context, env event.Envelope) error {
	if b.closed.Load() {
		return ErrBusClosed
	}

	subs := b.subs.list()
	results := fanout.Run(ctx, b.maxWorkers, subs, func(ctx context.Context, sub Subscriber) (struct{}, error) {
		return struct{}{}, deliver(ctx, sub, env)
	})

	for i, r := range results {
		if r.Err == nil {
			continue
		}
		b.logger.WarnContext(ctx, "event delivery failed",
			slog.String("subscriber", subs[i].Name()),
			slog.String("event", env.Name),
			slog.String("event_id", env.ID),
			slog.Any("error", r.Err),
		)
	}
	return nil
}

// Close stops the bus from accepting envelopes. Deliveries in flight finish
// normally. Close is idempotent.
func (b *Bus) Close() error {
	if b.closed.CompareAndSwap(false, true) {
		b.logger.Info("event bus closed")
	}
	return nil
}

func deliver(ctx context.Context, sub Subscriber, env event.Envelope) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("subscriber panicked: %v", v)
		}
	}()
	return sub.Handle(ctx, env)
}
