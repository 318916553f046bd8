package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-finder/backend/internal/logging"
	"github.com/pageza/recipe-finder/backend/internal/service"
	"github.com/pageza/recipe-finder/backend/internal/types"
)

const (
	errAddFavourite    = "something went wrong"
	errRemoveFavourite = "Oops, something went wrong"
	errInternal        = "something went wrong"
)

type RecipeHandler struct {
	recipeService service.IRecipeService
}

func NewRecipeHandler(recipeService service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("/search", h.SearchRecipes)
		recipes.GET("/:recipeId/summary", h.GetRecipeSummary)
		recipes.POST("/favourite", h.AddFavourite)
		recipes.GET("/favourite", h.ListFavourites)
		recipes.DELETE("/favourite", h.RemoveFavourite)
	}
}

// SearchRecipes handles GET /recipes/search?searchTerm=&page=
func (h *RecipeHandler) SearchRecipes(c *gin.Context) {
	var req types.SearchRecipesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "searchTerm and a page number of at least 1 are required"})
		return
	}

	results, err := h.recipeService.SearchRecipes(c.Request.Context(), req.SearchTerm, req.Page)
	if err != nil {
		if errors.Is(err, service.ErrPageOutOfRange) {
			h.fail(c, http.StatusBadRequest, err.Error(), "search page out of range", err, "page", req.Page)
			return
		}
		h.fail(c, http.StatusInternalServerError, errInternal, "search failed", err,
			"searchTerm", req.SearchTerm, "page", req.Page)
		return
	}

	c.JSON(http.StatusOK, results)
}

// GetRecipeSummary handles GET /recipes/:recipeId/summary
func (h *RecipeHandler) GetRecipeSummary(c *gin.Context) {
	recipeID := c.Param("recipeId")

	summary, err := h.recipeService.GetRecipeSummary(c.Request.Context(), recipeID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRecipeID) {
			h.fail(c, http.StatusBadRequest, err.Error(), "invalid summary id", err, "recipeId", recipeID)
			return
		}
		if service.IsUpstreamNotFound(err) {
			h.fail(c, http.StatusNotFound, "recipe not found", "summary not found", err, "recipeId", recipeID)
			return
		}
		h.fail(c, http.StatusInternalServerError, errInternal, "summary failed", err, "recipeId", recipeID)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// AddFavourite handles POST /recipes/favourite
func (h *RecipeHandler) AddFavourite(c *gin.Context) {
	var req types.FavouriteRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipeId is required"})
		return
	}

	favourite, err := h.recipeService.AddFavourite(c.Request.Context(), req.RecipeID.String())
	if err != nil {
		if errors.Is(err, service.ErrInvalidRecipeID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.fail(c, http.StatusInternalServerError, errAddFavourite, "add favourite failed", err,
			"recipeId", req.RecipeID.String())
		return
	}

	c.JSON(http.StatusCreated, favourite)
}

// ListFavourites handles GET /recipes/favourite
func (h *RecipeHandler) ListFavourites(c *gin.Context) {
	recipes, err := h.recipeService.ListFavourites(c.Request.Context())
	if err != nil {
		h.fail(c, http.StatusInternalServerError, errInternal, "list favourites failed", err)
		return
	}

	c.JSON(http.StatusOK, types.FavouritesResponse{Results: recipes})
}

// RemoveFavourite handles DELETE /recipes/favourite
func (h *RecipeHandler) RemoveFavourite(c *gin.Context) {
	var req types.FavouriteRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipeId is required"})
		return
	}

	if err := h.recipeService.RemoveFavourite(c.Request.Context(), req.RecipeID.String()); err != nil {
		if errors.Is(err, service.ErrInvalidRecipeID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.fail(c, http.StatusInternalServerError, errRemoveFavourite, "remove favourite failed", err,
			"recipeId", req.RecipeID.String())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RecipeHandler) fail(c *gin.Context, status int, public, msg string, err error, attrs ...any) {
	_ = c.Error(err)
	level := slog.LevelError
	if status < http.StatusInternalServerError {
		level = slog.LevelWarn
	}
	ctx := c.Request.Context()
	attrs = append(attrs, "requestID", logging.RequestIDFromContext(ctx), "error", err, "status", status)
	slog.Log(ctx, level, msg, attrs...)
	c.JSON(status, gin.H{"error": public})
}
