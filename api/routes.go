package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/hoaworks/reserve-api/api/annotations"
	authapi "github.com/hoaworks/reserve-api/api/auth"
	"github.com/hoaworks/reserve-api/api/components"
	"github.com/hoaworks/reserve-api/api/documents"
	"github.com/hoaworks/reserve-api/api/health"
	"github.com/hoaworks/reserve-api/api/photos"
	"github.com/hoaworks/reserve-api/api/reports"
	"github.com/hoaworks/reserve-api/api/scenarios"
	"github.com/hoaworks/reserve-api/api/types"
	"github.com/hoaworks/reserve-api/api/version"
	_ "github.com/hoaworks/reserve-api/docs/swagger"
	annotationService "github.com/hoaworks/reserve-api/internal/services/annotations"
	"github.com/hoaworks/reserve-api/internal/services/auth"
	componentService "github.com/hoaworks/reserve-api/internal/services/components"
	documentService "github.com/hoaworks/reserve-api/internal/services/documents"
	"github.com/hoaworks/reserve-api/internal/services/insights"
	jobService "github.com/hoaworks/reserve-api/internal/services/jobs"
	photoService "github.com/hoaworks/reserve-api/internal/services/photos"
	reportService "github.com/hoaworks/reserve-api/internal/services/reports"
	scenarioService "github.com/hoaworks/reserve-api/internal/services/scenarios"
	userService "github.com/hoaworks/reserve-api/internal/services/users"
	"github.com/hoaworks/reserve-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if deps == nil {
		deps = &types.Dependencies{}
	}

	if deps.DB == nil || deps.DB.DB == nil {
		return fmt.Errorf("database is required")
	}

	initializeServices(deps, cfg)

	// Everything under /api/v1 requires an authenticated identity
	authHandler, err := buildAuthHandler(deps, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize auth: %w", err)
	}

	v1 := engine.Group("/api/v1")
	v1.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.Burst))
	v1.Use(authHandler.AuthMiddleware())

	v1.GET("/me", authHandler.Me)

	documentGroup := v1.Group("/documents")
	documents.RegisterRoutes(documentGroup, deps)
	annotations.RegisterDocumentRoutes(documentGroup, deps)

	annotationGroup := v1.Group("/annotations")
	annotations.RegisterRoutes(annotationGroup, deps)

	photos.RegisterRoutes(v1.Group("/photos"), deps)
	components.RegisterRoutes(v1.Group("/components"), deps)
	scenarios.RegisterRoutes(v1.Group("/scenarios"), deps)
	reports.RegisterRoutes(v1.Group("/reports"), deps)

	return nil
}

// initializeServices fills in any services not supplied by the caller
func initializeServices(deps *types.Dependencies, cfg *config.Config) {
	db := deps.DB.DB

	if deps.UserService == nil {
		deps.UserService = userService.NewService(userService.NewRepository(db))
	}

	documentRepo := documentService.NewRepository(db)
	if deps.DocumentService == nil {
		deps.DocumentService = documentService.NewService(documentRepo)
	}

	if deps.AnnotationService == nil {
		deps.AnnotationService = annotationService.NewService(annotationService.NewRepository(db), documentRepo)
	}

	if deps.PhotoService == nil {
		deps.PhotoService = photoService.NewService(photoService.NewRepository(db))
	}

	if deps.ComponentService == nil {
		deps.ComponentService = componentService.NewService(componentService.NewRepository(db))
	}

	if deps.ScenarioService == nil {
		deps.ScenarioService = scenarioService.NewService(scenarioService.NewRepository(db))
	}

	if deps.JobService == nil {
		deps.JobService = jobService.NewService(jobService.NewRepository(db))
	}

	if deps.ReportService == nil {
		deps.ReportService = reportService.NewService(
			reportService.NewRepository(db),
			scenarioService.NewRepository(db),
			deps.JobService,
		)
	}

	if deps.InsightService == nil {
		deps.InsightService = insights.NewService(insights.NewClient(insights.Config{
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}))
	}
}

// buildAuthHandler wires JWT validation and profile mirroring
func buildAuthHandler(deps *types.Dependencies, cfg *config.Config) (*authapi.Handler, error) {
	if deps.AuthService == nil {
		if cfg.Auth.JWKSURL != "" {
			service, err := auth.NewService(cfg.Auth.JWKSURL)
			if err != nil {
				return nil, err
			}
			deps.AuthService = service
		} else if cfg.Auth.DevAuthEnabled {
			deps.AuthService = auth.NewDevService()
		} else {
			return nil, fmt.Errorf("auth.jwks_url is not configured")
		}
	}

	handler := authapi.NewHandler(deps.AuthService, deps.UserService)
	handler.SetDevAuth(cfg.Auth.DevAuthEnabled, cfg.Auth.DevAuthToken)
	return handler, nil
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
