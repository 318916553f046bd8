package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pageza/recipe-finder/backend/internal/database"
	"github.com/pageza/recipe-finder/backend/internal/service"
)

// Version is reported by the health endpoints. Overridden at build time.
var Version = "v1.0.0"

const readyTimeout = 2 * time.Second

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Recipe API is running",
		"version": Version,
	})
}

// ReadyCheck returns a handler reporting whether the database answers a ping.
func ReadyCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
		defer cancel()

		if err := database.HealthCheck(ctx, db); err != nil {
			slog.WarnContext(ctx, "readiness check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not_ready",
				"reason": "database unavailable",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, db *gorm.DB, recipeService service.IRecipeService) {
	// Health check endpoints
	router.GET("/health", HealthCheck)
	router.GET("/api/health", HealthCheck)
	router.GET("/ready", ReadyCheck(db))

	recipeHandler := NewRecipeHandler(recipeService)
	recipeHandler.RegisterRoutes(router.Group("/api"))
}
