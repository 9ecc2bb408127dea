package client

import (
	"errors"
	"fmt"
)

// ErrSessionRequired is returned when an operation that needs an
// authenticated session is attempted without a token or user id.
// No request is sent in that case.
var ErrSessionRequired = errors.New("session token and user_id are required")

// APIError represents an error response from the Document Management API,
// either an HTTP-level failure or a status:false envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}
