package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/sunny1561/EnrichProfile/internal/config"
	"github.com/sunny1561/EnrichProfile/pkg/models"
)

// RateLimiter limits requests per client IP. The window configuration is
// expressed as requests-per-window and converted to a sustained rate; a small
// burst absorbs legitimate back-to-back calls.
func RateLimiter(cfg *config.Config) echo.MiddlewareFunc {
	limit := rate.Limit(float64(cfg.RateLimit.Requests) / cfg.RateLimit.Window.Seconds())

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(
			echomiddleware.RateLimiterMemoryStoreConfig{
				Rate:      limit,
				Burst:     cfg.RateLimit.Burst,
				ExpiresIn: cfg.RateLimit.Window,
			},
		),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, models.ErrorResponse{
				Error: "Unable to identify client",
			})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
				Error: "Too many requests, please try again later.",
			})
		},
	})
}
