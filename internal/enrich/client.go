// Package enrich implements the ContactOut people-enrichment client.
package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sunny1561/EnrichProfile/internal/config"
	"github.com/sunny1561/EnrichProfile/internal/logging"
	"github.com/sunny1561/EnrichProfile/internal/logging/types"
	"github.com/sunny1561/EnrichProfile/pkg/models"
	"github.com/sunny1561/EnrichProfile/pkg/utils"
)

const enrichPath = "/v1/people/enrich"

// Client calls the ContactOut enrichment API. It performs exactly one
// outbound request per Enrich invocation; retry policy belongs to callers.
type Client struct {
	cfg        *config.Config
	httpClient *http.Client
	logger     types.Logger
}

// enrichPayload is the provider request body: the target email plus the
// contact fields we want included in the response.
type enrichPayload struct {
	Email   string   `json:"email"`
	Include []string `json:"include"`
}

// NewClient creates a new ContactOut client
func NewClient(cfg *config.Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.ContactOut.Timeout},
		logger:     logging.GetGlobalLogger(),
	}
}

// Enrich looks up the profile for the given email. A provider 404 returns
// *NotFoundError; any other non-2xx response or transport failure returns
// *UpstreamError. The API token travels in a header only and is never logged.
func (c *Client) Enrich(ctx context.Context, email string) (*models.EnrichResponse, error) {
	endpoint := strings.TrimRight(c.cfg.ContactOut.BaseURL, "/") + enrichPath

	bodyBytes, err := json.Marshal(enrichPayload{
		Email:   email,
		Include: c.cfg.ContactOut.Include,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode enrich payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create enrich request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("token", c.cfg.ContactOut.APIKey)

	c.logger.Info("Sending ContactOut enrich request", map[string]interface{}{
		"endpoint": endpoint,
		"email":    email,
	})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("ContactOut request failed", map[string]interface{}{
			"email": email,
			"error": err.Error(),
		})
		return nil, &UpstreamError{Body: err.Error()}
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode == http.StatusNotFound {
		c.logger.Warn("No ContactOut profile found", map[string]interface{}{
			"email": email,
		})
		return nil, &NotFoundError{Email: email}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("ContactOut enrich failed", map[string]interface{}{
			"status_code": resp.StatusCode,
			"email":       email,
		})
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Body:       utils.TruncateForLog(string(respBody), 1000),
		}
	}

	var enriched models.EnrichResponse
	if err := json.Unmarshal(respBody, &enriched); err != nil {
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Body:       fmt.Sprintf("failed to parse enrich response: %v", err),
		}
	}

	c.logger.Info("Enriched profile data received", map[string]interface{}{
		"email":       email,
		"has_profile": enriched.Profile != nil,
	})
	return &enriched, nil
}
