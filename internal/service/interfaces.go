package service

import (
	"context"

	"github.com/pageza/recipe-finder/backend/internal/model"
	"github.com/pageza/recipe-finder/backend/internal/types"
)

// IRecipeProvider defines the calls made against the upstream recipe API
type IRecipeProvider interface {
	SearchRecipes(ctx context.Context, query string, page int) (*types.SearchResponse, error)
	GetRecipeSummary(ctx context.Context, recipeID string) (*types.RecipeSummary, error)
	GetRecipesBulk(ctx context.Context, recipeIDs []string) ([]types.Recipe, error)
}

// IFavouriteStore defines persistence of favourite recipe ids
type IFavouriteStore interface {
	AddFavourite(ctx context.Context, recipeID string) (*model.FavouriteRecipe, error)
	ListFavourites(ctx context.Context) ([]model.FavouriteRecipe, error)
	RemoveFavourite(ctx context.Context, recipeID string) error
}

// IRecipeService defines the operations exposed by the recipe API
type IRecipeService interface {
	SearchRecipes(ctx context.Context, query string, page int) (*types.SearchResponse, error)
	GetRecipeSummary(ctx context.Context, recipeID string) (*types.RecipeSummary, error)
	AddFavourite(ctx context.Context, recipeID string) (*model.FavouriteRecipe, error)
	ListFavourites(ctx context.Context) ([]types.Recipe, error)
	RemoveFavourite(ctx context.Context, recipeID string) error
}
