package service

import (
	"context"
	"fmt"

	"github.com/pageza/recipe-finder/backend/internal/model"
	"github.com/pageza/recipe-finder/backend/internal/types"
)

// RecipeService combines the upstream recipe provider with the favourites store
type RecipeService struct {
	provider   IRecipeProvider
	favourites IFavouriteStore
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(provider IRecipeProvider, favourites IFavouriteStore) *RecipeService {
	return &RecipeService{
		provider:   provider,
		favourites: favourites,
	}
}

// SearchRecipes returns one page of upstream search results
func (s *RecipeService) SearchRecipes(ctx context.Context, query string, page int) (*types.SearchResponse, error) {
	return s.provider.SearchRecipes(ctx, query, page)
}

// GetRecipeSummary returns the upstream summary of a recipe
func (s *RecipeService) GetRecipeSummary(ctx context.Context, recipeID string) (*types.RecipeSummary, error) {
	return s.provider.GetRecipeSummary(ctx, recipeID)
}

// AddFavourite marks a recipe as favourite
func (s *RecipeService) AddFavourite(ctx context.Context, recipeID string) (*model.FavouriteRecipe, error) {
	return s.favourites.AddFavourite(ctx, recipeID)
}

// RemoveFavourite unmarks a recipe
func (s *RecipeService) RemoveFavourite(ctx context.Context, recipeID string) error {
	return s.favourites.RemoveFavourite(ctx, recipeID)
}

// ListFavourites loads the stored ids and enriches them with one bulk upstream call.
// Ids the provider no longer knows are left out of the result.
func (s *RecipeService) ListFavourites(ctx context.Context) ([]types.Recipe, error) {
	rows, err := s.favourites.ListFavourites(ctx)
	if err != nil {
		return nil, fmt.Errorf("list favourites: %w", err)
	}
	if len(rows) == 0 {
		return []types.Recipe{}, nil
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.RecipeID
	}

	recipes, err := s.provider.GetRecipesBulk(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("enrich favourites: %w", err)
	}
	if recipes == nil {
		recipes = []types.Recipe{}
	}
	return recipes, nil
}
