package tools

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"

	"github.com/docuvault/docmgmt-mcp/internal/export"
	"github.com/docuvault/docmgmt-mcp/internal/search"
	"github.com/docuvault/docmgmt-mcp/internal/upload"
	"github.com/docuvault/docmgmt-mcp/pkg/client"
)

// Error codes for MCP tool responses.
const (
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeDocMgmtError    = "DOCMGMT_ERROR"
	ErrCodeInvalidInput    = "INVALID_INPUT"
	ErrCodeTimeout         = "TIMEOUT"
	ErrCodeUnauthenticated = "UNAUTHENTICATED"
	ErrCodeBusy            = "BUSY"
)

// CodedError is an error with an associated error code.
type CodedError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CodedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CodedError) Unwrap() error {
	return e.Cause
}

// WrapDocMgmtError converts workflow and client errors to coded errors.
func WrapDocMgmtError(err error) error {
	if err == nil {
		return nil
	}

	coded := classify(err)

	slog.Warn("document management error",
		slog.String("code", coded.Code),
		slog.String("message", coded.Message),
	)

	return coded
}

func classify(err error) *CodedError {
	switch {
	case errors.Is(err, search.ErrNotAuthenticated),
		errors.Is(err, upload.ErrNotAuthenticated),
		errors.Is(err, client.ErrSessionRequired):
		return &CodedError{Code: ErrCodeUnauthenticated, Message: "not logged in, verify an OTP first", Cause: err}
	case errors.Is(err, search.ErrSearchInProgress):
		return &CodedError{Code: ErrCodeBusy, Message: "a search is already in progress", Cause: err}
	case errors.Is(err, export.ErrNoResults):
		return &CodedError{Code: ErrCodeInvalidInput, Message: "no search results to export", Cause: err}
	case errors.Is(err, upload.ErrNoFile), errors.Is(err, upload.ErrUnsupportedType):
		return &CodedError{Code: ErrCodeInvalidInput, Message: err.Error(), Cause: err}
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == 404 {
			return &CodedError{Code: ErrCodeNotFound, Message: apiErr.Message, Cause: err}
		}
		return &CodedError{Code: ErrCodeDocMgmtError, Message: apiErr.Message, Cause: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &CodedError{Code: ErrCodeTimeout, Message: "request timed out", Cause: err}
	}
	if strings.Contains(err.Error(), "context deadline exceeded") {
		return &CodedError{Code: ErrCodeTimeout, Message: "request timed out", Cause: err}
	}

	return &CodedError{Code: ErrCodeDocMgmtError, Message: err.Error(), Cause: err}
}

// ErrNotFound creates a not found error.
func ErrNotFound(resource, id string) error {
	return &CodedError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, id),
	}
}

// ErrInvalidInput creates an invalid input error.
func ErrInvalidInput(message string) error {
	return &CodedError{
		Code:    ErrCodeInvalidInput,
		Message: message,
	}
}
