// Package main is the migration CLI for the work item event log. It loads the
// same profile-based configuration as the server and drives the embedded
// goose migrations.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/jsamuelsen11/workitem-service/internal/platform/config"
	"github.com/jsamuelsen11/workitem-service/internal/platform/database"
	"github.com/jsamuelsen11/workitem-service/internal/platform/logging"
)

func main() {
	app := &cli.App{
		Name:  "migrate",
		Usage: "Manage the work item event log schema",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "profile",
				Aliases: []string{"p"},
				Usage:   "Configuration profile (local, dev, qa, prod)",
				EnvVars: []string{"APP_PROFILE"},
			},
			&cli.StringFlag{
				Name:    "database-url",
				Aliases: []string{"d"},
				Usage:   "PostgreSQL URL, overrides database.url",
				EnvVars: []string{"APP_DATABASE_URL"},
			},
			&cli.StringFlag{
				Name:  "config-dir",
				Usage: "Directory holding base.yaml and profile files",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "up",
				Usage:  "Apply all pending migrations",
				Action: withMigrator(func(c *cli.Context, m *database.Migrator) error { return m.Up(c.Context) }),
			},
			{
				Name:   "down",
				Usage:  "Roll back the most recent migration",
				Action: withMigrator(func(c *cli.Context, m *database.Migrator) error { return m.Down(c.Context) }),
			},
			{
				Name:   "status",
				Usage:  "Print the status of every migration",
				Action: withMigrator(func(c *cli.Context, m *database.Migrator) error { return m.Status(c.Context) }),
			},
			{
				Name:  "version",
				Usage: "Print the current schema version",
				Action: withMigrator(func(c *cli.Context, m *database.Migrator) error {
					v, err := m.Version(c.Context)
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(c.App.Writer, v)
					return err
				}),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// withMigrator loads configuration, opens the pool and hands a Migrator to
// fn. Both are released when fn returns.
func withMigrator(fn func(c *cli.Context, m *database.Migrator) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}

		logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

		db, err := database.New(c.Context, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer db.Close()

		m, err := database.NewMigrator(db.Pool(), logger)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := m.Close(); cerr != nil {
				logger.Warn("closing migrator", slog.Any("error", cerr))
			}
		}()

		return fn(c, m)
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	profile := c.String("profile")
	if profile == "" {
		return nil, errors.New("--profile or APP_PROFILE is required (e.g. local, dev, qa, prod)")
	}

	var opts []config.Option
	if dir := c.String("config-dir"); dir != "" {
		opts = append(opts, config.WithConfigDir(dir))
	}

	cfg, err := config.Load(profile, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if url := c.String("database-url"); url != "" {
		cfg.Database.URL = url
	}
	if cfg.Database.URL == "" {
		return nil, errors.New("database url is required (database.url, APP_DATABASE_URL or --database-url)")
	}
	return cfg, nil
}
