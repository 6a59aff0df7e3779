package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sunny1561/EnrichProfile/internal/logging"
	"github.com/sunny1561/EnrichProfile/internal/pipeline"
	"github.com/sunny1561/EnrichProfile/pkg/models"
)

// EnrichHandler handles profile enrichment requests. It binds the request,
// runs the pipeline, and maps terminal failures onto the wire contract:
// validation failures are 400s, everything else is a 500 with details.
func EnrichHandler(runner *pipeline.Runner) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := logging.GetGlobalLogger()
		requestID, _ := c.Get("request_id").(string)

		var req models.EnrichRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "Valid email is required",
			})
		}

		logger.Info("Enrich request received", map[string]interface{}{
			"request_id": requestID,
			"email":      req.Email,
		})

		enriched, runErr := runner.Run(c.Request().Context(), req.Email)
		if runErr != nil {
			if runErr.Kind == pipeline.FailureBadRequest {
				return c.JSON(http.StatusBadRequest, models.ErrorResponse{
					Error: "Valid email is required",
				})
			}
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "Failed to enrich profile",
				Details: runErr.Details(),
			})
		}

		return c.JSON(http.StatusOK, models.EnrichSuccessResponse{
			Message:     fmt.Sprintf("Success! You will shortly receive an email with the enriched profile at %s.", req.Email),
			ProfileData: enriched,
		})
	}
}
