package models

// EnrichRequest represents the request payload for the enrich endpoint
type EnrichRequest struct {
	Email string `json:"email" validate:"required,email"`
}
