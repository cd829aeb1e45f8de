package errorutil

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

// NewInvalidInput rejects a malformed extraction request at the boundary.
func NewInvalidInput(message string) error {
	return NewDomainError("INVALID_INPUT", message, http.StatusBadRequest, nil)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

// NewProviderError wraps a failed model-provider call (network, auth,
// rate limit, provider-side 5xx). Never retried by the service.
func NewProviderError(err error) error {
	return &DomainError{
		Code:       "PROVIDER_ERROR",
		Message:    "ai provider request failed",
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

// NewResponseParseError wraps a model reply that could not be decoded as
// the expected structure, carrying the raw parse failure detail.
func NewResponseParseError(err error) error {
	return &DomainError{
		Code:       "RESPONSE_PARSE_ERROR",
		Message:    "failed to parse ai response",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewProviderTimeout reports that the bounded wait on the model call
// elapsed or was cancelled, distinct from a bad provider response.
func NewProviderTimeout(err error) error {
	return &DomainError{
		Code:       "PROVIDER_TIMEOUT",
		Message:    "ai provider did not respond in time",
		HTTPStatus: http.StatusGatewayTimeout,
		Err:        err,
	}
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, pgx.ErrNoRows) {
		if de, ok := NewNotFound("resource", nil).(*DomainError); ok {
			return de
		}
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}
