package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ASL-Live-Subtitles/model-serving-microservice/api/gestures"
	"github.com/ASL-Live-Subtitles/model-serving-microservice/api/health"
	"github.com/ASL-Live-Subtitles/model-serving-microservice/api/models"
	"github.com/ASL-Live-Subtitles/model-serving-microservice/api/predictions"
	"github.com/ASL-Live-Subtitles/model-serving-microservice/api/types"
	"github.com/ASL-Live-Subtitles/model-serving-microservice/api/version"
	_ "github.com/ASL-Live-Subtitles/model-serving-microservice/docs/swagger"
	gesturesService "github.com/ASL-Live-Subtitles/model-serving-microservice/internal/services/gestures"
	predictionsService "github.com/ASL-Live-Subtitles/model-serving-microservice/internal/services/predictions"
	registryService "github.com/ASL-Live-Subtitles/model-serving-microservice/internal/services/registry"
	"github.com/ASL-Live-Subtitles/model-serving-microservice/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Table routes need a database; without one the service still serves
	// health and the descriptor so deploys can probe it.
	if deps.DB == nil || deps.DB.DB == nil {
		return nil
	}

	initializeServices(deps)

	rps := cfg.RateLimiting.RPS
	burst := cfg.RateLimiting.Burst

	limited := func(group *gin.RouterGroup) *gin.RouterGroup {
		if cfg.RateLimiting.Enabled {
			group.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, burst))
		}
		return group
	}

	models.RegisterRoutes(limited(engine.Group("/models")), deps)
	gestures.RegisterRoutes(limited(engine.Group("/gestures")), deps)
	predictions.RegisterRoutes(limited(engine.Group("/predictions")), deps)

	return nil
}

// initializeServices wires the table services over the shared gorm handle
func initializeServices(deps *types.Dependencies) {
	db := deps.DB.DB

	if deps.ModelService == nil {
		deps.ModelService = registryService.NewService(registryService.NewRepository(db))
	}
	if deps.GestureService == nil {
		deps.GestureService = gesturesService.NewService(gesturesService.NewRepository(db))
	}
	if deps.PredictionService == nil {
		deps.PredictionService = predictionsService.NewService(predictionsService.NewRepository(db))
	}
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
