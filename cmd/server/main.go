// Command server runs the work item processing API. APP_PROFILE selects the
// configuration profile; the process stops gracefully on SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/workitem-service/internal/adapters/eventbus"
	adapthttp "github.com/jsamuelsen11/workitem-service/internal/adapters/http"
	"github.com/jsamuelsen11/workitem-service/internal/platform/config"
	"github.com/jsamuelsen11/workitem-service/internal/platform/database"
	"github.com/jsamuelsen11/workitem-service/internal/platform/logging"
	"github.com/jsamuelsen11/workitem-service/internal/platform/telemetry"
)

// flushTimeout bounds the final telemetry export.
const flushTimeout = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	profile, ok := os.LookupEnv("APP_PROFILE")
	if !ok || profile == "" {
		return errors.New("APP_PROFILE is required (local, dev, qa or prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	otelProviders, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer flushTelemetry(otelProviders, logger)

	db, err := openEventStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	injector := do.New()
	provideAll(injector, cfg, logger, otelProviders.Metrics, db)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("wiring server: %w", err)
	}
	registerHealthChecks(injector, db)

	served := make(chan error, 1)
	go func() { served <- server.Start() }()

	select {
	case err := <-served:
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down", slog.String("cause", context.Cause(ctx).Error()))
	}

	if err := server.Shutdown(context.WithoutCancel(ctx)); err != nil {
		logger.Error("server shutdown", logging.Err(err))
	}
	<-served

	// Requests have drained, so nothing publishes any more.
	if err := do.MustInvoke[*eventbus.Bus](injector).Close(); err != nil {
		logger.Error("event bus shutdown", logging.Err(err))
	}

	logger.Info("shutdown complete")
	return nil
}

func flushTelemetry(p *telemetry.Providers, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	if err := p.Shutdown(ctx); err != nil {
		logger.Error("telemetry shutdown", logging.Err(err))
	}
}

// openEventStore connects to PostgreSQL and migrates the schema when the
// event store is enabled. It returns a nil DB otherwise.
func openEventStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*database.DB, error) {
	if !cfg.Events.Store.Enabled {
		return nil, nil
	}

	db, err := database.New(ctx, cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := migrate(ctx, db, logger); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}
	return db, nil
}

func migrate(ctx context.Context, db *database.DB, logger *slog.Logger) error {
	m, err := database.NewMigrator(db.Pool(), logger)
	if err != nil {
		return err
	}
	defer func() { _ = m.Close() }()

	return m.Up(ctx)
}
