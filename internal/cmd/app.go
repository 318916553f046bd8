// Package cmd defines the recipe API command line: serve runs the HTTP server,
// seed stores favourite recipe ids ahead of time.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v3"
	"gorm.io/gorm"

	"github.com/pageza/recipe-finder/backend/config"
	"github.com/pageza/recipe-finder/backend/internal/api"
	"github.com/pageza/recipe-finder/backend/internal/database"
	"github.com/pageza/recipe-finder/backend/internal/logging"
	"github.com/pageza/recipe-finder/backend/internal/server"
	"github.com/pageza/recipe-finder/backend/internal/service"
)

const name = "recipe-api"

// NewApp returns the root command.
func NewApp() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Recipe search and favourites backend",
		Version: api.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Value:   "info",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, api.Version, cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			serveCmd(),
			seedCmd(),
		},
		DefaultCommand: "serve",
	}
}

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "port",
				Usage:   "port to listen on",
				Sources: cli.EnvVars("SERVER_PORT"),
			},
			&cli.BoolFlag{
				Name:    "migrate",
				Usage:   "apply database migrations before serving",
				Sources: cli.EnvVars("MIGRATE_ON_START"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if port := cmd.String("port"); port != "" {
				cfg.ServerPort = port
			}
			if config.IsProduction() {
				gin.SetMode(gin.ReleaseMode)
			}

			db, err := openDatabase(ctx, cfg, cmd.Bool("migrate"))
			if err != nil {
				return err
			}
			defer func() {
				if err := database.Close(db); err != nil {
					slog.Warn("failed to close database", "error", err)
				}
			}()

			slog.Info("server config",
				"address", cfg.Addr(),
				"dbDriver", cfg.DBDriver,
				"recipeAPI", cfg.RecipeAPIURL,
				"pageSize", cfg.RecipeAPIPageSize,
				"shutdownTimeout", cfg.ShutdownTimeout.String(),
				"logLevel", cfg.LogLevel)

			return server.New(cfg, db).Run(ctx)
		},
	}
}

func seedCmd() *cli.Command {
	return &cli.Command{
		Name:      "seed",
		Usage:     "Store favourite recipe ids",
		ArgsUsage: "RECIPE_ID...",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ids := cmd.Args().Slice()
			if len(ids) == 0 {
				return errors.New("at least one recipe id is required")
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			db, err := openDatabase(ctx, cfg, true)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close(db) }()

			favourites := service.NewFavouriteService(db)
			var added, skipped int
			for _, id := range ids {
				_, err := favourites.AddFavourite(ctx, id)
				switch {
				case errors.Is(err, service.ErrFavouriteExists):
					skipped++
				case err != nil:
					return fmt.Errorf("failed to add favourite %q: %w", strings.TrimSpace(id), err)
				default:
					added++
				}
			}

			slog.Info("seeded favourites", "added", added, "skipped", skipped)
			return nil
		},
	}
}

// openDatabase connects and, when asked or when running on sqlite, migrates.
func openDatabase(ctx context.Context, cfg *config.Config, migrate bool) (*gorm.DB, error) {
	db, err := database.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if migrate || cfg.DBDriver == config.DriverSQLite {
		if err := database.RunMigrations(ctx, db); err != nil {
			_ = database.Close(db)
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}
	return db, nil
}
