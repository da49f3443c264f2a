package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/showquotes/transcript-api/api/health"
	"github.com/showquotes/transcript-api/api/imports"
	"github.com/showquotes/transcript-api/api/random"
	"github.com/showquotes/transcript-api/api/search"
	"github.com/showquotes/transcript-api/api/seasons"
	sessionroutes "github.com/showquotes/transcript-api/api/sessions"
	"github.com/showquotes/transcript-api/api/speakers"
	"github.com/showquotes/transcript-api/api/transcripts"
	"github.com/showquotes/transcript-api/api/types"
	"github.com/showquotes/transcript-api/api/version"
	_ "github.com/showquotes/transcript-api/docs/swagger"
	"github.com/showquotes/transcript-api/internal/services/corpus"
	"github.com/showquotes/transcript-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Public routes (no session, no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Swagger documentation
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

	if deps == nil || deps.Sessions == nil {
		return fmt.Errorf("session registry is required")
	}
	if deps.Importer == nil {
		deps.Importer = corpus.NewImporter()
	}

	// API v1 routes
	v1 := engine.Group("/api/v1")
	if cfg.RateLimiting.Enabled {
		v1.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized,
			cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.Burst))
	}

	// Session creation stands alone: it is the one call made before a
	// session exists.
	sessionroutes.RegisterRoutes(v1.Group("/sessions"), deps)

	// Everything else reads or writes one session's dataset.
	scoped := v1.Group("")
	scoped.Use(SessionRequired(deps))

	imports.RegisterRoutes(scoped.Group("/import"), deps)
	seasons.RegisterRoutes(scoped.Group("/seasons"), deps)
	speakers.RegisterRoutes(scoped.Group("/speakers"), deps)
	transcripts.RegisterRoutes(scoped.Group("/transcripts"), deps)
	random.RegisterRoutes(scoped.Group("/random-line"), deps)
	search.RegisterRoutes(scoped.Group("/search-phrases"), deps)

	return nil
}

// NotFoundHandler returns the JSON 404 handler.
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, types.ErrorResponse{
			Status:  types.StatusError,
			Message: "Route not found",
		})
	}
}
