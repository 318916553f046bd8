package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipe-finder/backend/internal/model"
)

// MockFavouriteStore is a mock implementation of the favourites store
type MockFavouriteStore struct {
	mock.Mock
}

func (m *MockFavouriteStore) AddFavourite(ctx context.Context, recipeID string) (*model.FavouriteRecipe, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FavouriteRecipe), args.Error(1)
}

func (m *MockFavouriteStore) ListFavourites(ctx context.Context) ([]model.FavouriteRecipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FavouriteRecipe), args.Error(1)
}

func (m *MockFavouriteStore) RemoveFavourite(ctx context.Context, recipeID string) error {
	args := m.Called(ctx, recipeID)
	return args.Error(0)
}
