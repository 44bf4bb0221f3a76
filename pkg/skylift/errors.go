package skylift

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Client-produced error codes. These cover every failure the library itself
// classifies; provider responses carry their own codes (see below).
const (
	ErrorCodeInvalidToken = "INVALID_TOKEN"
	ErrorCodeValidation   = "VALIDATION_ERROR"
	ErrorCodeTimeout      = "TIMEOUT"
	ErrorCodeNetwork      = "NETWORK_ERROR"
	ErrorCodeUnknown      = "UNKNOWN_ERROR"
	ErrorCodeAction       = "ACTION_ERROR"
)

// Provider error codes returned in the API error envelope.
const (
	ErrorCodeUnauthorized    = "unauthorized"
	ErrorCodeForbidden       = "forbidden"
	ErrorCodeInvalidInput    = "invalid_input"
	ErrorCodeNotFound        = "not_found"
	ErrorCodeUniquenessError = "uniqueness_error"
	ErrorCodeProtected       = "protected"
	ErrorCodeLocked          = "locked"
	ErrorCodeRateLimited     = "rate_limit_exceeded"
	ErrorCodeResourceLimit   = "resource_limit_exceeded"
	ErrorCodeUnavailable     = "resource_unavailable"
	ErrorCodeServiceError    = "service_error"
	ErrorCodeConflict        = "conflict"
	ErrorCodeMaintenance     = "maintenance"
	ErrorCodeTokenReadonly   = "token_readonly"
	ErrorCodeNoSpaceLeft     = "no_space_left_in_location"
)

// APIError is the single error kind surfaced for every failure in this
// library: provider rejections, transport failures, timeouts, and request or
// response validation all normalize to it. Callers can branch on Code and
// HTTPStatus with one handling path.
type APIError struct {
	// Message is a human-readable description, always present.
	Message string `json:"message" yaml:"message"`
	// Code is a short machine token such as TIMEOUT, VALIDATION_ERROR, or a
	// provider code like uniqueness_error. Empty when the provider returned a
	// non-JSON error body.
	Code string `json:"code,omitempty" yaml:"code,omitempty"`
	// HTTPStatus is the status of the provider response. Zero means no HTTP
	// exchange occurred (timeouts, network failures, local validation).
	HTTPStatus int `json:"http_status,omitempty" yaml:"http_status,omitempty"`
	// Details carries field-level validation messages when present. A nil
	// Details is distinguishable from an empty field list.
	Details *ErrorDetails `json:"details,omitempty" yaml:"details,omitempty"`
}

// ErrorDetails is the structured payload of a validation failure.
type ErrorDetails struct {
	Fields []FieldError `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// FieldError describes the validation messages attached to one field path.
type FieldError struct {
	Name     string   `json:"name"     yaml:"name"`
	Messages []string `json:"messages" yaml:"messages"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	switch {
	case e.Code != "" && e.HTTPStatus > 0:
		return fmt.Sprintf("%s (code: %s, status: %d)", e.Message, e.Code, e.HTTPStatus)
	case e.Code != "":
		return fmt.Sprintf("%s (code: %s)", e.Message, e.Code)
	case e.HTTPStatus > 0:
		return fmt.Sprintf("%s (status: %d)", e.Message, e.HTTPStatus)
	default:
		return e.Message
	}
}

// HasFieldErrors reports whether the error carries field-level validation
// detail. It is safe to call regardless of how the error was produced.
func (e *APIError) HasFieldErrors() bool {
	return e.Details != nil && len(e.Details.Fields) > 0
}

// FieldErrors returns the field-level validation details, or nil when the
// error carries none.
func (e *APIError) FieldErrors() []FieldError {
	if e.Details == nil {
		return nil
	}

	return e.Details.Fields
}

// errorEnvelope mirrors the provider's error response body.
type errorEnvelope struct {
	Error *envelopeError `json:"error"`
}

type envelopeError struct {
	Message string        `json:"message"`
	Code    string        `json:"code"`
	Details *ErrorDetails `json:"details,omitempty"`
}

// ParseErrorEnvelope builds an APIError from a non-2xx response body. When the
// body is the provider's error envelope, message, code, and details are
// surfaced verbatim alongside the HTTP status. Anything else (non-JSON, or an
// unexpected shape) degrades to a generic "HTTP <status> <statusText>" message
// with no code.
func ParseErrorEnvelope(body []byte, status int) *APIError {
	var envelope errorEnvelope

	err := json.Unmarshal(body, &envelope)
	if err != nil || envelope.Error == nil || envelope.Error.Message == "" {
		return NewHTTPStatusError(status)
	}

	return &APIError{
		Message:    envelope.Error.Message,
		Code:       envelope.Error.Code,
		HTTPStatus: status,
		Details:    envelope.Error.Details,
	}
}

// NewHTTPStatusError builds the generic error for a non-2xx response whose
// body carried no parseable envelope.
func NewHTTPStatusError(status int) *APIError {
	return &APIError{
		Message:    fmt.Sprintf("HTTP %d %s", status, http.StatusText(status)),
		HTTPStatus: status,
	}
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired   = errors.New("config is required")
	ErrTokenRequired    = errors.New("API token is required")
	ErrEndpointRequired = errors.New("API endpoint is required")
	ErrNoHostInURL      = errors.New("no host specified in URL")
	ErrNoMoreItems      = errors.New("no more items")
	ErrNilPageFunc      = errors.New("page function is required")
)

// IsTimeout checks if the error is a client-side timeout, from either the
// per-request deadline or the action poller's deadline.
func IsTimeout(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == ErrorCodeTimeout
	}

	return false
}

// IsNetworkError checks if the error is a transport-level failure other than
// a timeout.
func IsNetworkError(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == ErrorCodeNetwork
	}

	return false
}

// IsValidationError checks if the error is a request or response shape
// validation failure.
func IsValidationError(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == ErrorCodeValidation
	}

	return false
}

// IsInvalidToken checks if the error was raised for a missing or blank API
// token.
func IsInvalidToken(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == ErrorCodeInvalidToken
	}

	return false
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == ErrorCodeNotFound || apiErr.HTTPStatus == http.StatusNotFound
	}

	return false
}

// IsUnauthorized checks if the error is an authentication failure reported by
// the provider.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == ErrorCodeUnauthorized || apiErr.HTTPStatus == http.StatusUnauthorized
	}

	return false
}

// IsRateLimited checks if the provider rejected the request for exceeding a
// rate limit.
func IsRateLimited(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == ErrorCodeRateLimited || apiErr.HTTPStatus == http.StatusTooManyRequests
	}

	return false
}
