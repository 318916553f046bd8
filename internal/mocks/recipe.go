package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipe-finder/backend/internal/model"
	"github.com/pageza/recipe-finder/backend/internal/types"
)

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

// SearchRecipes mocks the SearchRecipes method
func (m *MockRecipeService) SearchRecipes(ctx context.Context, query string, page int) (*types.SearchResponse, error) {
	args := m.Called(ctx, query, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.SearchResponse), args.Error(1)
}

// GetRecipeSummary mocks the GetRecipeSummary method
func (m *MockRecipeService) GetRecipeSummary(ctx context.Context, recipeID string) (*types.RecipeSummary, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RecipeSummary), args.Error(1)
}

// AddFavourite mocks the AddFavourite method
func (m *MockRecipeService) AddFavourite(ctx context.Context, recipeID string) (*model.FavouriteRecipe, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FavouriteRecipe), args.Error(1)
}

// ListFavourites mocks the ListFavourites method
func (m *MockRecipeService) ListFavourites(ctx context.Context) ([]types.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Recipe), args.Error(1)
}

// RemoveFavourite mocks the RemoveFavourite method
func (m *MockRecipeService) RemoveFavourite(ctx context.Context, recipeID string) error {
	args := m.Called(ctx, recipeID)
	return args.Error(0)
}
