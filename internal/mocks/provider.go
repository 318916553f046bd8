package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipe-finder/backend/internal/types"
)

// MockRecipeProvider is a mock implementation of the upstream recipe API
type MockRecipeProvider struct {
	mock.Mock
}

func (m *MockRecipeProvider) SearchRecipes(ctx context.Context, query string, page int) (*types.SearchResponse, error) {
	args := m.Called(ctx, query, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.SearchResponse), args.Error(1)
}

func (m *MockRecipeProvider) GetRecipeSummary(ctx context.Context, recipeID string) (*types.RecipeSummary, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RecipeSummary), args.Error(1)
}

func (m *MockRecipeProvider) GetRecipesBulk(ctx context.Context, recipeIDs []string) ([]types.Recipe, error) {
	args := m.Called(ctx, recipeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Recipe), args.Error(1)
}
