package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pageza/recipe-finder/backend/internal/model"
	"github.com/pageza/recipe-finder/backend/internal/testhelpers"
)

func TestFavouriteService(t *testing.T) {
	ctx := context.Background()

	t.Run("should add and list favourites", func(t *testing.T) {
		svc := NewFavouriteService(testhelpers.SetupSQLiteDB(t))

		fav, err := svc.AddFavourite(ctx, "715538")
		require.NoError(t, err)
		assert.Equal(t, "715538", fav.RecipeID)
		_, err = svc.AddFavourite(ctx, "52772")
		require.NoError(t, err)

		favourites, err := svc.ListFavourites(ctx)
		require.NoError(t, err)
		assert.Equal(t, []model.FavouriteRecipe{{RecipeID: "52772"}, {RecipeID: "715538"}}, favourites)
	})

	t.Run("should trim ids before storing", func(t *testing.T) {
		svc := NewFavouriteService(testhelpers.SetupSQLiteDB(t))

		fav, err := svc.AddFavourite(ctx, "  52772 ")
		require.NoError(t, err)
		assert.Equal(t, "52772", fav.RecipeID)
	})

	t.Run("should reject a duplicate and keep one row", func(t *testing.T) {
		db := testhelpers.SetupSQLiteDB(t)
		svc := NewFavouriteService(db)

		_, err := svc.AddFavourite(ctx, "52772")
		require.NoError(t, err)
		fav, err := svc.AddFavourite(ctx, "52772")
		assert.Nil(t, fav)
		assert.ErrorIs(t, err, ErrFavouriteExists)

		var count int64
		require.NoError(t, db.Model(&model.FavouriteRecipe{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("should reject invalid ids", func(t *testing.T) {
		svc := NewFavouriteService(testhelpers.SetupSQLiteDB(t))

		_, err := svc.AddFavourite(ctx, "   ")
		assert.ErrorIs(t, err, ErrInvalidRecipeID)
		_, err = svc.AddFavourite(ctx, strings.Repeat("9", maxRecipeIDLength+1))
		assert.ErrorIs(t, err, ErrInvalidRecipeID)
		assert.ErrorIs(t, svc.RemoveFavourite(ctx, ""), ErrInvalidRecipeID)
	})

	t.Run("should remove a favourite", func(t *testing.T) {
		svc := NewFavouriteService(testhelpers.SetupSQLiteDB(t))

		_, err := svc.AddFavourite(ctx, "52772")
		require.NoError(t, err)
		_, err = svc.AddFavourite(ctx, "716429")
		require.NoError(t, err)

		require.NoError(t, svc.RemoveFavourite(ctx, "52772"))

		favourites, err := svc.ListFavourites(ctx)
		require.NoError(t, err)
		assert.Equal(t, []model.FavouriteRecipe{{RecipeID: "716429"}}, favourites)
	})

	t.Run("should report removing an unknown id", func(t *testing.T) {
		svc := NewFavouriteService(testhelpers.SetupSQLiteDB(t))

		assert.ErrorIs(t, svc.RemoveFavourite(ctx, "52772"), ErrFavouriteNotFound)
	})

	t.Run("should list nothing on an empty table", func(t *testing.T) {
		svc := NewFavouriteService(testhelpers.SetupSQLiteDB(t))

		favourites, err := svc.ListFavourites(ctx)
		require.NoError(t, err)
		assert.Empty(t, favourites)
	})
}

func TestFavouriteServicePostgresDuplicate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}
	ctx := context.Background()

	db := testhelpers.SetupPostgresDB(t)
	require.NoError(t, db.AutoMigrate(&model.FavouriteRecipe{}))
	sqlDB, err := db.DB()
	require.NoError(t, err)

	// Same pool, but pq errors reach the service untranslated.
	raw, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	for name, conn := range map[string]*gorm.DB{"translated": db, "untranslated": raw} {
		t.Run("should report a duplicate as ErrFavouriteExists with "+name+" errors", func(t *testing.T) {
			require.NoError(t, db.Exec("DELETE FROM favourite_recipes").Error)
			svc := NewFavouriteService(conn)

			_, err := svc.AddFavourite(ctx, "52772")
			require.NoError(t, err)
			fav, err := svc.AddFavourite(ctx, "52772")
			assert.Nil(t, fav)
			assert.ErrorIs(t, err, ErrFavouriteExists)

			var count int64
			require.NoError(t, db.Model(&model.FavouriteRecipe{}).Count(&count).Error)
			assert.Equal(t, int64(1), count)
		})
	}
}

func TestIsDuplicateKey(t *testing.T) {
	assert.False(t, isDuplicateKey(assert.AnError))
	assert.True(t, isDuplicateKey(&testError{"UNIQUE constraint failed: favourite_recipes.recipe_id"}))
	assert.True(t, isDuplicateKey(&testError{`ERROR: duplicate key value violates unique constraint "favourite_recipes_pkey" (SQLSTATE 23505)`}))
}

type testError struct{ msg string }

func (e *testError) Error() string { return e.msg }
