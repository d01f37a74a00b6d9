// Package events routes domain events from the processor to the configured
// publisher.
package events

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/workitem-service/internal/domain"
	"github.com/jsamuelsen11/workitem-service/internal/domain/event"
	"github.com/jsamuelsen11/workitem-service/internal/platform/logging"
	"github.com/jsamuelsen11/workitem-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/workitem-service/internal/ports"
)

// Compile-time check that Registry implements ports.EventSink.
var _ ports.EventSink = (*Registry)(nil)

// Option configures a Registry.
type Option func(*Registry)

// WithMetrics counts published events. Nil disables counting.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(r *Registry) {
		r.metrics = m
	}
}

// Registry stamps each event with an envelope and hands it to a single
// publisher. It neither filters nor retries.
type Registry struct {
	publisher ports.EventPublisher
	metrics   *telemetry.Metrics
	newID     func() string
	logger    *slog.Logger
}

// NewRegistry creates a Registry that forwards to publisher. A nil logger
// discards output.
func NewRegistry(publisher ports.EventPublisher, logger *slog.Logger, opts ...Option) *Registry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := &Registry{
		publisher: publisher,
		newID:     uuid.NewString,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Publish wraps e in an envelope and forwards it. Publisher errors are
// returned wrapped.
func (r *Registry) Publish(ctx context.Context, e event.Event) error {
	if e == nil {
		return fmt.Errorf("%w: nil event", domain.ErrValidation)
	}

	env := event.NewEnvelope(r.newID(), e)
	if err := r.publisher.Publish(ctx, env); err != nil {
		r.logger.ErrorContext(ctx, "failed to publish event",
			logging.Op("Publish"),
			slog.String("event", env.Name),
			slog.String("event_id", env.ID),
			slog.Int64("subject_id", env.SubjectID),
			logging.Err(err),
		)
		return fmt.Errorf("publishing %s for %d: %w", env.Name, env.SubjectID, err)
	}

	if r.metrics != nil {
		r.metrics.EventsPublished.Add(ctx, 1, metric.WithAttributes(telemetry.AttrEvent.String(env.Name)))
	}
	r.logger.DebugContext(ctx, "event published",
		slog.String("event", env.Name),
		slog.String("event_id", env.ID),
		slog.Int64("subject_id", env.SubjectID),
	)
	return nil
}
