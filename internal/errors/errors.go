package errors

import (
	"fmt"
)

// APIError is the JSON error body every handler responds with
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
	Details string    `json:"details,omitempty"`
	Status  int       `json:"-"`
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field: %s)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code ErrorCode, message string) *APIError {
	return &APIError{Code: code, Message: message, Status: code.StatusCode()}
}

// NotFound creates a NOT_FOUND error for the named resource
func NotFound(resource string) *APIError {
	return newError(ErrNotFound, fmt.Sprintf("%s not found", resource))
}

func Unauthorized(message string) *APIError {
	return newError(ErrUnauthorized, message)
}

func Forbidden(message string) *APIError {
	return newError(ErrForbidden, message)
}

// Conflict creates a CONFLICT error for a resource that already exists
func Conflict(resource string) *APIError {
	return newError(ErrConflict, fmt.Sprintf("%s already exists", resource))
}

// ValidationError creates a VALIDATION_ERROR tied to one input field
func ValidationError(field, message string) *APIError {
	e := newError(ErrValidation, message)
	e.Field = field
	return e
}

func BadRequest(message string) *APIError {
	return newError(ErrBadRequest, message)
}

// TooLarge creates a PAYLOAD_TOO_LARGE error with the allowed limit in bytes
func TooLarge(what string, limit int64) *APIError {
	return newError(ErrTooLarge, fmt.Sprintf("%s exceeds the %d byte limit", what, limit))
}

func InternalError(message string) *APIError {
	return newError(ErrInternalError, message)
}

// UploadFailed surfaces a media provider failure to the client
func UploadFailed(cause error) *APIError {
	return newError(ErrUploadFailed, fmt.Sprintf("failed to upload image: %v", cause))
}

// ServiceUnavailable creates a SERVICE_UNAVAILABLE error for a backing service
func ServiceUnavailable(service string) *APIError {
	return newError(ErrServiceUnavail, fmt.Sprintf("%s is temporarily unavailable", service))
}

// Timeout creates a TIMEOUT error for an operation
func Timeout(operation string) *APIError {
	return newError(ErrTimeout, fmt.Sprintf("%s timed out", operation))
}

// WithDetails adds additional details to an error
func (e *APIError) WithDetails(details string) *APIError {
	e.Details = details
	return e
}
