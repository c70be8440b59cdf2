package cogmem

import (
	"errors"
	"fmt"
)

// ErrInvalidAPIKey is returned by New when the API key is missing or does not
// start with "cm_". It is a configuration failure: no request was made.
var ErrInvalidAPIKey = errors.New(`cogmem: API key must start with "cm_" (provide via parameter or COGMEM_API_KEY environment variable)`)

// APIError is an error response from the CogmemAi service.
//
// It covers two cases: the service returned an HTTP error status, or the
// response body was not valid JSON (regardless of status). Transport-level
// failures such as timeouts are returned as-is and are never wrapped in an
// APIError; callers can distinguish the two with errors.As.
type APIError struct {
	// Message is the service's "error" field, falling back to its "message"
	// field, falling back to the raw response text.
	Message string

	// StatusCode is the HTTP status of the response, 0 if unknown.
	StatusCode int
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("cogmem: API error (status %d): %s", e.StatusCode, e.Message)
	}
	return "cogmem: API error: " + e.Message
}
