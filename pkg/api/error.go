package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	json "github.com/json-iterator/go"
)

// ErrorResponse is the server's JSON error body
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}

// APIError is a non-2xx response from the Framez API
type APIError struct {
	Code       string
	Message    string
	Field      string
	Details    string
	StatusCode int
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%d] %s: %s (%s)", e.StatusCode, e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%d] %s: %s", e.StatusCode, e.Code, e.Message)
}

// ParseError builds an APIError from a failed response, falling back to the
// raw body when it is not a JSON error
func ParseError(resp *resty.Response) error {
	statusCode := resp.StatusCode()

	var errResp ErrorResponse
	if err := json.Unmarshal(resp.Body(), &errResp); err == nil && errResp.Code != "" {
		return &APIError{
			Code:       errResp.Code,
			Message:    errResp.Message,
			Field:      errResp.Field,
			Details:    errResp.Details,
			StatusCode: statusCode,
		}
	}

	return &APIError{
		Code:       "UNKNOWN_ERROR",
		Message:    string(resp.Body()),
		StatusCode: statusCode,
	}
}

// CheckResponse turns a transport error or non-2xx response into an error
func CheckResponse(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return ParseError(resp)
	}
	return nil
}

func statusIs(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

func IsUnauthorized(err error) bool {
	return statusIs(err, http.StatusUnauthorized)
}

func IsForbidden(err error) bool {
	return statusIs(err, http.StatusForbidden)
}

func IsNotFound(err error) bool {
	return statusIs(err, http.StatusNotFound)
}

func IsConflict(err error) bool {
	return statusIs(err, http.StatusConflict)
}

// IsValidation reports a 422 from server-side input validation
func IsValidation(err error) bool {
	return statusIs(err, http.StatusUnprocessableEntity)
}

// IsServerError reports any 5xx
func IsServerError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode >= 500
}
