package cmd

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-finder/backend/config"
	"github.com/pageza/recipe-finder/backend/internal/database"
	"github.com/pageza/recipe-finder/backend/internal/model"
)

func sqliteEnv(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipes.db")
	t.Setenv("CI", "")
	t.Setenv("ENV", "test")
	t.Setenv("SECRETS_DIR", t.TempDir())
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", path)
	t.Setenv("LOG_LEVEL", "error")
	return path
}

func TestSeed(t *testing.T) {
	path := sqliteEnv(t)

	err := NewApp().Run(context.Background(), []string{name, "seed", "52772", "716429", "52772"})
	require.NoError(t, err)

	db, err := database.New(&config.Config{DBDriver: config.DriverSQLite, SQLitePath: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	var favourites []model.FavouriteRecipe
	require.NoError(t, db.Order("recipe_id").Find(&favourites).Error)
	assert.Equal(t, []model.FavouriteRecipe{{RecipeID: "52772"}, {RecipeID: "716429"}}, favourites)
}

func TestSeedRequiresIDs(t *testing.T) {
	sqliteEnv(t)

	err := NewApp().Run(context.Background(), []string{name, "seed"})
	assert.ErrorContains(t, err, "at least one recipe id is required")
}

func TestSeedRejectsInvalidID(t *testing.T) {
	sqliteEnv(t)

	err := NewApp().Run(context.Background(), []string{name, "seed", "   "})
	assert.Error(t, err)
}
