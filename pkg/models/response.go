package models

import "time"

// EnrichSuccessResponse is the 200 body for the enrich endpoint. The message
// always names the email the report was sent to; ProfileData carries the
// provider envelope so the caller can render it client-side.
type EnrichSuccessResponse struct {
	Message     string          `json:"message"`
	ProfileData *EnrichResponse `json:"profileData"`
}

// ErrorResponse represents an error response. Details is only populated for
// server-side failures and never contains provider credentials.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}
