package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sunny1561/EnrichProfile/pkg/models"
	"github.com/sunny1561/EnrichProfile/pkg/utils"
)

// RequestValidation middleware tags each request with an ID and caps the
// request body for POST endpoints.
func RequestValidation() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := utils.GenerateRequestID()
			c.Set("request_id", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			if c.Request().Method == http.MethodPost {
				if c.Request().ContentLength > 1024*1024 { // 1MB limit
					return c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
						Error: "Request body too large",
					})
				}
			}

			return next(c)
		}
	}
}
