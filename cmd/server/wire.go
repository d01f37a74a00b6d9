package main

import (
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/workitem-service/internal/adapters/http"
	"github.com/jsamuelsen11/workitem-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/workitem-service/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/workitem-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/workitem-service/internal/adapters/eventbus"
	"github.com/jsamuelsen11/workitem-service/internal/adapters/eventstore"
	"github.com/jsamuelsen11/workitem-service/internal/adapters/webhook"
	"github.com/jsamuelsen11/workitem-service/internal/app"
	"github.com/jsamuelsen11/workitem-service/internal/app/events"
	"github.com/jsamuelsen11/workitem-service/internal/platform/config"
	"github.com/jsamuelsen11/workitem-service/internal/platform/database"
	"github.com/jsamuelsen11/workitem-service/internal/platform/health"
	"github.com/jsamuelsen11/workitem-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/workitem-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/workitem-service/internal/ports"
)

// provideAll registers the service graph. Providers are lazy: nothing is
// built until the server is invoked. metrics and db may be nil.
func provideAll(i *do.RootScope, cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics, db *database.DB) {
	provideOutbound(i, cfg, logger, metrics)
	provideEvents(i, cfg, logger, metrics, db)
	provideApp(i, cfg, logger, metrics)
	provideInbound(i, cfg, logger, metrics)
}

func provideOutbound(i *do.RootScope, cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) {
	do.Provide(i, func(do.Injector) (*httpclient.Client, error) {
		return httpclient.New(&cfg.Client, acl.BoardServiceName, metrics, logger), nil
	})
	do.Provide(i, func(i do.Injector) (*acl.BoardClient, error) {
		return acl.NewBoardClient(do.MustInvoke[*httpclient.Client](i), logger), nil
	})
	do.Provide(i, func(do.Injector) ([]*webhook.Subscriber, error) {
		return webhook.NewFromConfig(cfg.Events, metrics, logger), nil
	})
}

func provideEvents(i *do.RootScope, cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics, db *database.DB) {
	do.Provide(i, func(i do.Injector) (*eventbus.Bus, error) {
		bus := eventbus.New(logger)
		if cfg.Events.Log {
			bus.Subscribe(eventbus.NewLogSubscriber(logger))
		}
		if db != nil {
			bus.Subscribe(eventstore.New(db.Pool()))
		}
		for _, sub := range do.MustInvoke[[]*webhook.Subscriber](i) {
			bus.Subscribe(sub)
		}
		return bus, nil
	})
	do.Provide(i, func(i do.Injector) (ports.EventSink, error) {
		return events.NewRegistry(do.MustInvoke[*eventbus.Bus](i), logger, events.WithMetrics(metrics)), nil
	})
}

func provideApp(i *do.RootScope, cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) {
	do.Provide(i, func(i do.Injector) (ports.WorkItemProcessor, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return app.NewProcessor(app.ProcessorDeps{
			ProjectBacklog: acl.NewProjectBacklogClient(client, logger),
			SprintBacklog:  acl.NewSprintBacklogClient(client, logger),
			Progress:       app.NewProgressService(do.MustInvoke[*acl.BoardClient](i), logger),
			Communication:  acl.NewNotificationClient(client, logger),
			Events:         do.MustInvoke[ports.EventSink](i),
		}, logger), nil
	})
	do.Provide(i, func(i do.Injector) (ports.WorkItemService, error) {
		board := do.MustInvoke[*acl.BoardClient](i)
		return app.NewWorkItemService(
			app.Repositories{Epics: board, Stories: board, Tasks: board},
			do.MustInvoke[ports.WorkItemProcessor](i),
			logger,
			app.WithMaxWorkers(cfg.Processing.MaxWorkers),
			app.WithTimeout(cfg.Processing.Timeout),
			app.WithMetrics(metrics),
		), nil
	})
}

func provideInbound(i *do.RootScope, cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) {
	do.Provide(i, func(do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(cfg.Server.HealthCheckTimeout)), nil
	})
	do.Provide(i, func(i do.Injector) (nethttp.Handler, error) {
		return adapthttp.NewRouter(
			handlers.NewWorkItemHandler(do.MustInvoke[ports.WorkItemService](i)),
			handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.AppContext(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})
	do.Provide(i, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})
}

// registerHealthChecks adds every outbound dependency to the readiness probe.
func registerHealthChecks(i *do.RootScope, db *database.DB) {
	registry := do.MustInvoke[ports.HealthRegistry](i)
	registry.Register(do.MustInvoke[*acl.BoardClient](i))
	for _, sub := range do.MustInvoke[[]*webhook.Subscriber](i) {
		registry.Register(sub)
	}
	if db != nil {
		registry.Register(db)
	}
}
