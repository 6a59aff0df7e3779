// Package pipeline runs the enrich-and-notify flow for one request: validate
// the email, enrich it through the provider, render and deliver the report.
// Each stage either advances the run or moves it into a terminal failure.
package pipeline

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/sunny1561/EnrichProfile/internal/enrich"
	"github.com/sunny1561/EnrichProfile/internal/logging"
	logtypes "github.com/sunny1561/EnrichProfile/internal/logging/types"
	"github.com/sunny1561/EnrichProfile/internal/metrics"
	"github.com/sunny1561/EnrichProfile/pkg/models"
)

// FailureKind classifies a terminal pipeline failure for response mapping.
type FailureKind int

const (
	// FailureBadRequest means the input email never passed validation; no
	// outbound call was made.
	FailureBadRequest FailureKind = iota
	// FailureNotFound means the provider has no profile for the address.
	FailureNotFound
	// FailureUpstream covers provider errors and transport failures.
	FailureUpstream
	// FailureInternal covers rendering and delivery failures on our side.
	FailureInternal
)

// Error is a terminal pipeline failure with its classification.
type Error struct {
	Kind    FailureKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Details returns the operator-facing failure description.
func (e *Error) Details() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Enricher looks up the profile for an email address.
type Enricher interface {
	Enrich(ctx context.Context, email string) (*models.EnrichResponse, error)
}

// Deliverer renders and emails the report for an enriched profile.
type Deliverer interface {
	Deliver(ctx context.Context, enriched *models.EnrichResponse, requesterEmail string) error
}

// Runner drives one request through the full pipeline.
type Runner struct {
	enricher  Enricher
	deliverer Deliverer
	validate  *validator.Validate
	logger    logtypes.Logger
}

// NewRunner wires the pipeline stages together.
func NewRunner(enricher Enricher, deliverer Deliverer) *Runner {
	return &Runner{
		enricher:  enricher,
		deliverer: deliverer,
		validate:  validator.New(),
		logger:    logging.GetGlobalLogger(),
	}
}

// Run executes validate, enrich, deliver in order. Validation failures
// short-circuit before any outbound call. On success the enriched payload is
// returned so the API can echo it to the caller.
func (r *Runner) Run(ctx context.Context, email string) (*models.EnrichResponse, *Error) {
	if err := r.validate.Var(email, "required,email"); err != nil {
		metrics.PipelineRuns.WithLabelValues("bad_request").Inc()
		return nil, &Error{
			Kind:    FailureBadRequest,
			Message: "Valid email is required",
		}
	}

	enriched, err := r.enricher.Enrich(ctx, email)
	if err != nil {
		return nil, r.classifyEnrichFailure(email, err)
	}

	if err := r.deliverer.Deliver(ctx, enriched, email); err != nil {
		metrics.PipelineRuns.WithLabelValues("internal").Inc()
		r.logger.Error("Report delivery failed", map[string]interface{}{
			"email": email,
			"error": err.Error(),
		})
		return nil, &Error{Kind: FailureInternal, Err: err}
	}

	metrics.PipelineRuns.WithLabelValues("success").Inc()
	return enriched, nil
}

func (r *Runner) classifyEnrichFailure(email string, err error) *Error {
	var notFound *enrich.NotFoundError
	if errors.As(err, &notFound) {
		metrics.PipelineRuns.WithLabelValues("not_found").Inc()
		return &Error{Kind: FailureNotFound, Err: err}
	}

	metrics.PipelineRuns.WithLabelValues("upstream").Inc()
	r.logger.Error("Profile enrichment failed", map[string]interface{}{
		"email": email,
		"error": err.Error(),
	})
	return &Error{Kind: FailureUpstream, Err: err}
}
