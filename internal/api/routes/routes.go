package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sunny1561/EnrichProfile/internal/api/handlers"
	"github.com/sunny1561/EnrichProfile/internal/api/middleware"
	"github.com/sunny1561/EnrichProfile/internal/config"
	"github.com/sunny1561/EnrichProfile/internal/pipeline"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, runner *pipeline.Runner) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig(cfg))
	e.Use(middleware.RequestValidation())
	e.Use(middleware.RateLimiter(cfg))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/live", handlers.LivenessHandler)
	}

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Enrichment endpoint
	e.POST("/enrich", handlers.EnrichHandler(runner))

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "Profile Enrichment Service",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
