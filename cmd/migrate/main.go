package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/urfave/cli/v3"

	"github.com/pageza/recipe-finder/backend/config"
	"github.com/pageza/recipe-finder/backend/internal/logging"
	"github.com/pageza/recipe-finder/backend/internal/migrations"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := &cli.Command{
		Name:  "migrate",
		Usage: "Apply or roll back the postgres schema migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "database-url",
				Usage:   "postgres connection URL (defaults to the DB_* settings)",
				Sources: cli.EnvVars("DATABASE_URL"),
			},
			&cli.BoolFlag{
				Name:  "rollback",
				Usage: "Rollback the last migration",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Value:   "info",
			},
		},
		Action: run,
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	logging.SetDefaultStructuredLoggerWithLevel("migrate", "", cmd.String("log-level"))

	dsn := cmd.String("database-url")
	if dsn == "" {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		dsn = cfg.URL()
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if cmd.Bool("rollback") {
		name, err := migrations.Down(ctx, db)
		if errors.Is(err, migrations.ErrNothingToRollback) {
			slog.Info("no migrations to rollback")
			return nil
		}
		if err != nil {
			return err
		}
		slog.Info("successfully rolled back migration", "migration", name)
		return nil
	}

	applied, err := migrations.Up(ctx, db)
	if err != nil {
		return err
	}
	slog.Info("all migrations applied successfully", "applied", len(applied))
	return nil
}
