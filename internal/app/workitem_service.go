// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/workitem-service/internal/app/fanout"
	"github.com/jsamuelsen11/workitem-service/internal/domain"
	"github.com/jsamuelsen11/workitem-service/internal/domain/workitem"
	"github.com/jsamuelsen11/workitem-service/internal/platform/logging"
	"github.com/jsamuelsen11/workitem-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/workitem-service/internal/ports"
)

// Compile-time check that WorkItemService implements ports.WorkItemService.
var _ ports.WorkItemService = (*WorkItemService)(nil)

const (
	tracerName        = "github.com/jsamuelsen11/workitem-service/internal/app"
	defaultMaxWorkers = 4
)

// Repositories groups the per-kind loaders used by WorkItemService.
type Repositories struct {
	Epics   ports.EpicRepository
	Stories ports.StoryRepository
	Tasks   ports.TaskRepository
}

// ServiceOption configures a WorkItemService.
type ServiceOption func(*WorkItemService)

// WithMaxWorkers bounds the concurrency of ProcessBatch. Values below 1 are
// ignored.
func WithMaxWorkers(n int) ServiceOption {
	return func(s *WorkItemService) {
		if n >= 1 {
			s.maxWorkers = n
		}
	}
}

// WithTimeout bounds each item's load and processing. Zero disables it.
func WithTimeout(d time.Duration) ServiceOption {
	return func(s *WorkItemService) {
		s.timeout = d
	}
}

// WithMetrics records processing counters and durations. Nil disables them.
func WithMetrics(m *telemetry.Metrics) ServiceOption {
	return func(s *WorkItemService) {
		s.metrics = m
	}
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) ServiceOption {
	return func(s *WorkItemService) {
		s.tracer = tp.Tracer(tracerName)
	}
}

// WorkItemService implements ports.WorkItemService. It loads a work item,
// hands it to the processor and converts every failure, panics included,
// into a ResultCode. The cause of a failure is classified and reported through
// logs, the trace span and metrics, and is never returned to the caller.
type WorkItemService struct {
	repos      Repositories
	processor  ports.WorkItemProcessor
	logger     *slog.Logger
	tracer     trace.Tracer
	metrics    *telemetry.Metrics
	maxWorkers int
	timeout    time.Duration
}

// NewWorkItemService creates a WorkItemService. A nil logger discards output.
func NewWorkItemService(repos Repositories, processor ports.WorkItemProcessor, logger *slog.Logger, opts ...ServiceOption) *WorkItemService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &WorkItemService{
		repos:      repos,
		processor:  processor,
		logger:     logger,
		tracer:     otel.GetTracerProvider().Tracer(tracerName),
		maxWorkers: defaultMaxWorkers,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ProcessEpic loads and processes the epic with the given ID.
func (s *WorkItemService) ProcessEpic(ctx context.Context, id int64) ports.ResultCode {
	return s.process(ctx, workitem.KindEpic, id, func(ctx context.Context) (workitem.WorkItem, error) {
		epic, err := s.repos.Epics.FindEpic(ctx, id)
		if err != nil || epic == nil {
			return nil, err
		}
		return epic, nil
	})
}

// ProcessStory loads and processes the story with the given ID.
func (s *WorkItemService) ProcessStory(ctx context.Context, id int64) ports.ResultCode {
	return s.process(ctx, workitem.KindStory, id, func(ctx context.Context) (workitem.WorkItem, error) {
		story, err := s.repos.Stories.FindStory(ctx, id)
		if err != nil || story == nil {
			return nil, err
		}
		return story, nil
	})
}

// ProcessTask loads and processes the task with the given ID.
func (s *WorkItemService) ProcessTask(ctx context.Context, id int64) ports.ResultCode {
	return s.process(ctx, workitem.KindTask, id, func(ctx context.Context) (workitem.WorkItem, error) {
		task, err := s.repos.Tasks.FindTask(ctx, id)
		if err != nil || task == nil {
			return nil, err
		}
		return task, nil
	})
}

// Process dispatches to the kind-specific entry point.
func (s *WorkItemService) Process(ctx context.Context, kind workitem.Kind, id int64) ports.ResultCode {
	switch kind {
	case workitem.KindEpic:
		return s.ProcessEpic(ctx, id)
	case workitem.KindStory:
		return s.ProcessStory(ctx, id)
	case workitem.KindTask:
		return s.ProcessTask(ctx, id)
	default:
		s.logger.ErrorContext(ctx, "cannot process work item of unknown kind",
			logging.Op("Process"),
			logging.WorkItem(kind, id),
		)
		return ports.ResultProcessingFailed
	}
}

// ProcessBatch processes reqs concurrently with bounded workers. Outcomes are
// in request order. Items still waiting for a worker when ctx is canceled are
// reported as ResultProcessingFailed.
func (s *WorkItemService) ProcessBatch(ctx context.Context, reqs []ports.ProcessRequest) []ports.ProcessOutcome {
	s.logger.InfoContext(ctx, "processing work item batch", slog.Int("count", len(reqs)))

	results := fanout.Run(ctx, s.maxWorkers, reqs,
		func(ctx context.Context, req ports.ProcessRequest) (ports.ResultCode, error) {
			return s.Process(ctx, req.Kind, req.ID), nil
		},
	)

	outcomes := make([]ports.ProcessOutcome, len(reqs))
	for i, r := range results {
		outcomes[i] = ports.ProcessOutcome{ProcessRequest: reqs[i], Result: r.Value}
		if r.Err != nil {
			outcomes[i].Result = ports.ResultProcessingFailed
		}
	}
	return outcomes
}

type loader func(ctx context.Context) (workitem.WorkItem, error)

func (s *WorkItemService) process(ctx context.Context, kind workitem.Kind, id int64, load loader) ports.ResultCode {
	start := time.Now()

	ctx, span := s.tracer.Start(ctx, "workitem.process",
		trace.WithAttributes(
			attribute.String("workitem.kind", kind.String()),
			attribute.Int64("workitem.id", id),
		),
	)
	defer span.End()

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	code, err := s.contain(ctx, load)
	s.report(ctx, span, kind, id, code, err, start)
	return code
}

// contain runs load and the processor, recovering panics from either.
func (s *WorkItemService) contain(ctx context.Context, load loader) (code ports.ResultCode, err error) {
	defer func() {
		if r := recover(); r != nil {
			code, err = ports.ResultProcessingFailed, panicError(r)
		}
	}()

	item, err := load(ctx)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return ports.ResultNotFound, nil
	case err != nil:
		return ports.ResultProcessingFailed, fmt.Errorf("loading work item: %w", err)
	case item == nil:
		return ports.ResultNotFound, nil
	}

	if err := s.processor.ProcessFor(ctx, item); err != nil {
		return ports.ResultProcessingFailed, err
	}
	return ports.ResultProcessed, nil
}

func (s *WorkItemService) report(ctx context.Context, span trace.Span, kind workitem.Kind, id int64, code ports.ResultCode, err error, start time.Time) {
	attrs := []attribute.KeyValue{
		telemetry.AttrKind.String(kind.String()),
		telemetry.AttrResult.String(code.String()),
	}
	span.SetAttributes(attribute.String("workitem.result", code.String()))

	if err != nil {
		failure := ClassifyFailure(err)
		attrs = append(attrs, telemetry.AttrFailure.String(string(failure)))

		span.RecordError(err)
		span.SetStatus(codes.Error, string(failure))

		s.logger.ErrorContext(ctx, "work item processing failed",
			logging.Op("Process"),
			logging.WorkItem(kind, id),
			slog.String("failure", string(failure)),
			logging.Err(err),
		)
	}

	if s.metrics == nil {
		return
	}
	opt := metric.WithAttributes(attrs...)
	s.metrics.ProcessTotal.Add(ctx, 1, opt)
	s.metrics.ProcessDuration.Record(ctx, time.Since(start).Seconds(), opt)
}
