package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunny1561/EnrichProfile/internal/enrich"
	"github.com/sunny1561/EnrichProfile/pkg/models"
)

// ==========================
// Test Helper Functions
// ==========================

type stubEnricher struct {
	response *models.EnrichResponse
	err      error
	calls    int
}

func (s *stubEnricher) Enrich(_ context.Context, _ string) (*models.EnrichResponse, error) {
	s.calls++
	return s.response, s.err
}

type stubDeliverer struct {
	err   error
	calls int
	email string
}

func (s *stubDeliverer) Deliver(_ context.Context, _ *models.EnrichResponse, requesterEmail string) error {
	s.calls++
	s.email = requesterEmail
	return s.err
}

// ==========================
// Pipeline Tests
// ==========================

func TestRunner_Run_Success(t *testing.T) {
	enriched := &models.EnrichResponse{Profile: &models.Profile{}}
	enricher := &stubEnricher{response: enriched}
	deliverer := &stubDeliverer{}
	runner := NewRunner(enricher, deliverer)

	result, runErr := runner.Run(context.Background(), "jane@example.com")

	require.Nil(t, runErr)
	assert.Same(t, enriched, result)
	assert.Equal(t, 1, enricher.calls)
	assert.Equal(t, 1, deliverer.calls)
	assert.Equal(t, "jane@example.com", deliverer.email)
}

func TestRunner_Run_InvalidEmailShortCircuits(t *testing.T) {
	tests := []struct {
		name  string
		email string
	}{
		{name: "empty", email: ""},
		{name: "missing domain", email: "jane@"},
		{name: "missing at sign", email: "jane.example.com"},
		{name: "whitespace", email: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enricher := &stubEnricher{}
			deliverer := &stubDeliverer{}
			runner := NewRunner(enricher, deliverer)

			result, runErr := runner.Run(context.Background(), tt.email)

			assert.Nil(t, result)
			require.NotNil(t, runErr)
			assert.Equal(t, FailureBadRequest, runErr.Kind)

			// Validation failures never reach the provider or the mailer.
			assert.Zero(t, enricher.calls)
			assert.Zero(t, deliverer.calls)
		})
	}
}

func TestRunner_Run_ProfileNotFound(t *testing.T) {
	enricher := &stubEnricher{err: &enrich.NotFoundError{Email: "nobody@example.com"}}
	deliverer := &stubDeliverer{}
	runner := NewRunner(enricher, deliverer)

	result, runErr := runner.Run(context.Background(), "nobody@example.com")

	assert.Nil(t, result)
	require.NotNil(t, runErr)
	assert.Equal(t, FailureNotFound, runErr.Kind)
	assert.Equal(t, "No ContactOut profile found for nobody@example.com", runErr.Details())
	assert.Zero(t, deliverer.calls)
}

func TestRunner_Run_UpstreamFailure(t *testing.T) {
	enricher := &stubEnricher{err: &enrich.UpstreamError{StatusCode: 503, Body: "unavailable"}}
	deliverer := &stubDeliverer{}
	runner := NewRunner(enricher, deliverer)

	result, runErr := runner.Run(context.Background(), "jane@example.com")

	assert.Nil(t, result)
	require.NotNil(t, runErr)
	assert.Equal(t, FailureUpstream, runErr.Kind)
	assert.Equal(t, "ContactOut API error: 503 - unavailable", runErr.Details())
	assert.Zero(t, deliverer.calls)
}

func TestRunner_Run_DeliveryFailure(t *testing.T) {
	enricher := &stubEnricher{response: &models.EnrichResponse{}}
	deliverer := &stubDeliverer{err: errors.New("smtp send failed: connection refused")}
	runner := NewRunner(enricher, deliverer)

	result, runErr := runner.Run(context.Background(), "jane@example.com")

	assert.Nil(t, result)
	require.NotNil(t, runErr)
	assert.Equal(t, FailureInternal, runErr.Kind)
	assert.Contains(t, runErr.Details(), "smtp send failed")
}
