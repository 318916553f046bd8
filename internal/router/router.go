package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/pageza/recipe-finder/backend/config"
	"github.com/pageza/recipe-finder/backend/internal/api"
	"github.com/pageza/recipe-finder/backend/internal/middleware"
)

// SetupRouter configures the application middleware and routes
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()

	// Order matters: metrics and logging must observe the status written by recovery.
	router.Use(
		middleware.RequestID(),
		middleware.Metrics(),
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api.SetupAPI(router, db, cfg)

	return router
}
