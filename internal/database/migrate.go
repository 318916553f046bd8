package database

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/pageza/recipe-finder/backend/internal/migrations"
	"github.com/pageza/recipe-finder/backend/internal/model"
)

// RunMigrations brings the schema up to date. SQLite uses gorm's
// auto-migration; postgres applies the versioned SQL migrations.
func RunMigrations(ctx context.Context, db *gorm.DB) error {
	if db.Dialector.Name() == "sqlite" {
		slog.InfoContext(ctx, "using gorm auto-migration for sqlite")
		return db.AutoMigrate(&model.FavouriteRecipe{})
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	applied, err := migrations.Up(ctx, sqlDB)
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "migrations complete", "applied", len(applied))
	return nil
}
