package eventbus

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/workitem-service/internal/domain/event"
)

// LogSubscriber writes every envelope to the structured log at INFO.
type LogSubscriber struct {
	logger *slog.Logger
}

// NewLogSubscriber creates a LogSubscriber writing to logger.
func NewLogSubscriber(logger *slog.Logger) *LogSubscriber {
	return &LogSubscriber{logger: logger}
}

// Name implements Subscriber.
func (*LogSubscriber) Name() string { return "log" }

// Handle implements Subscriber.
func (s *LogSubscriber) Handle(ctx context.Context, env event.Envelope) error {
	s.logger.InfoContext(ctx, "work item event",
		slog.String("event", env.Name),
		slog.String("event_id", env.ID),
		slog.Int64("subject_id", env.SubjectID),
		slog.Time("occurred_at", env.OccurredAt),
		slog.Any("payload", env.Event),
	)
	return nil
}
