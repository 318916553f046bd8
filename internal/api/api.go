package api

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pageza/recipe-finder/backend/config"
	"github.com/pageza/recipe-finder/backend/internal/service"
)

// SetupAPI builds the services from cfg and registers every route on router.
func SetupAPI(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Initialize services
	provider := service.NewRecipeAPIClient(cfg.RecipeAPIURL, cfg.RecipeAPIKey, cfg.RecipeAPIPageSize, cfg.RecipeAPITimeout)
	favourites := service.NewFavouriteService(db)
	recipeService := service.NewRecipeService(provider, favourites)

	RegisterRoutes(router, db, recipeService)
}
