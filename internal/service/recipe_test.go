package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-finder/backend/internal/mocks"
	"github.com/pageza/recipe-finder/backend/internal/model"
	"github.com/pageza/recipe-finder/backend/internal/types"
)

func TestRecipeService_ListFavourites(t *testing.T) {
	ctx := context.Background()

	t.Run("should enrich stored ids with one bulk call", func(t *testing.T) {
		provider := new(mocks.MockRecipeProvider)
		store := new(mocks.MockFavouriteStore)
		svc := NewRecipeService(provider, store)

		store.On("ListFavourites", mock.Anything).
			Return([]model.FavouriteRecipe{{RecipeID: "52772"}, {RecipeID: "716429"}}, nil)
		expected := []types.Recipe{
			{ID: "52772", Title: "Teriyaki Chicken Casserole"},
			{ID: "716429", Title: "Pasta with Garlic"},
		}
		provider.On("GetRecipesBulk", mock.Anything, []string{"52772", "716429"}).Return(expected, nil).Once()

		recipes, err := svc.ListFavourites(ctx)
		require.NoError(t, err)
		assert.Equal(t, expected, recipes)
		provider.AssertExpectations(t)
		store.AssertExpectations(t)
	})

	t.Run("should skip upstream when there are no favourites", func(t *testing.T) {
		provider := new(mocks.MockRecipeProvider)
		store := new(mocks.MockFavouriteStore)
		svc := NewRecipeService(provider, store)

		store.On("ListFavourites", mock.Anything).Return([]model.FavouriteRecipe{}, nil)

		recipes, err := svc.ListFavourites(ctx)
		require.NoError(t, err)
		assert.NotNil(t, recipes)
		assert.Empty(t, recipes)
		provider.AssertNotCalled(t, "GetRecipesBulk", mock.Anything, mock.Anything)
	})

	t.Run("should fail when the store fails", func(t *testing.T) {
		provider := new(mocks.MockRecipeProvider)
		store := new(mocks.MockFavouriteStore)
		svc := NewRecipeService(provider, store)

		storeErr := errors.New("connection refused")
		store.On("ListFavourites", mock.Anything).Return(nil, storeErr)

		_, err := svc.ListFavourites(ctx)
		assert.ErrorIs(t, err, storeErr)
		assert.Contains(t, err.Error(), "list favourites")
	})

	t.Run("should fail when enrichment fails", func(t *testing.T) {
		provider := new(mocks.MockRecipeProvider)
		store := new(mocks.MockFavouriteStore)
		svc := NewRecipeService(provider, store)

		store.On("ListFavourites", mock.Anything).Return([]model.FavouriteRecipe{{RecipeID: "52772"}}, nil)
		upstreamErr := &UpstreamError{Op: "bulk", StatusCode: 402}
		provider.On("GetRecipesBulk", mock.Anything, []string{"52772"}).Return(nil, upstreamErr)

		_, err := svc.ListFavourites(ctx)
		var got *UpstreamError
		require.ErrorAs(t, err, &got)
		assert.Equal(t, 402, got.StatusCode)
	})
}

func TestRecipeService_Delegates(t *testing.T) {
	ctx := context.Background()
	provider := new(mocks.MockRecipeProvider)
	store := new(mocks.MockFavouriteStore)
	svc := NewRecipeService(provider, store)

	page := &types.SearchResponse{Results: []types.Recipe{{ID: "52772"}}, Number: 10, TotalResults: 1}
	provider.On("SearchRecipes", mock.Anything, "chicken", 2).Return(page, nil)
	summary := &types.RecipeSummary{ID: "52772", Title: "Teriyaki Chicken Casserole", Summary: "<b>tasty</b>"}
	provider.On("GetRecipeSummary", mock.Anything, "52772").Return(summary, nil)
	store.On("AddFavourite", mock.Anything, "52772").Return(&model.FavouriteRecipe{RecipeID: "52772"}, nil)
	store.On("RemoveFavourite", mock.Anything, "52772").Return(ErrFavouriteNotFound)

	gotPage, err := svc.SearchRecipes(ctx, "chicken", 2)
	require.NoError(t, err)
	assert.Same(t, page, gotPage)

	gotSummary, err := svc.GetRecipeSummary(ctx, "52772")
	require.NoError(t, err)
	assert.Same(t, summary, gotSummary)

	fav, err := svc.AddFavourite(ctx, "52772")
	require.NoError(t, err)
	assert.Equal(t, "52772", fav.RecipeID)

	assert.ErrorIs(t, svc.RemoveFavourite(ctx, "52772"), ErrFavouriteNotFound)

	provider.AssertExpectations(t)
	store.AssertExpectations(t)
}
