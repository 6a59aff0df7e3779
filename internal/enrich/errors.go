package enrich

import "fmt"

// NotFoundError reports that the provider has no profile for the address.
// This is an expected business outcome, not a systems failure, so it gets
// its own type rather than folding into UpstreamError.
type NotFoundError struct {
	Email string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No ContactOut profile found for %s", e.Email)
}

// UpstreamError covers every other non-2xx response or transport failure.
// Body is truncated before it gets here and never contains the API token.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	status := "Unknown"
	if e.StatusCode != 0 {
		status = fmt.Sprintf("%d", e.StatusCode)
	}
	return fmt.Sprintf("ContactOut API error: %s - %s", status, e.Body)
}
