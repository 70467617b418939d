package errors

import (
	"fmt"
	"net/http"
)

// APIError represents an error response from the helpdesk API
type APIError struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Code       string `json:"code"`
	Body       string `json:"body,omitempty"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("helpdesk API error (%d %s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("helpdesk API error (%d): %s", e.StatusCode, e.Message)
}

// NewAPIError creates a new API error
func NewAPIError(statusCode int, message, code, body string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
		Body:       body,
	}
}

// Common error types
var (
	// ErrUnauthorized represents a 401 Unauthorized error
	ErrUnauthorized = &APIError{
		StatusCode: http.StatusUnauthorized,
		Message:    "Unauthorized",
		Code:       "UNAUTHORIZED",
	}

	// ErrForbidden represents a 403 Forbidden error
	ErrForbidden = &APIError{
		StatusCode: http.StatusForbidden,
		Message:    "Forbidden",
		Code:       "FORBIDDEN",
	}

	// ErrNotFound represents a 404 Not Found error
	ErrNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Message:    "Resource not found",
		Code:       "NOT_FOUND",
	}

	// ErrRateLimited represents a 429 Too Many Requests error
	ErrRateLimited = &APIError{
		StatusCode: http.StatusTooManyRequests,
		Message:    "Rate limit exceeded",
		Code:       "RATE_LIMITED",
	}
)

// IsAPIError checks if an error is an API error
func IsAPIError(err error) bool {
	_, ok := err.(*APIError)
	return ok
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// IsUnauthorized checks if an error is an unauthorized error
func IsUnauthorized(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.StatusCode == http.StatusUnauthorized
	}
	return false
}

// IsForbidden checks if an error is a forbidden error
func IsForbidden(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.StatusCode == http.StatusForbidden
	}
	return false
}

// IsRateLimited checks if an error is a rate limit error
func IsRateLimited(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.StatusCode == http.StatusTooManyRequests
	}
	return false
}

// NetworkError represents a network-related error
type NetworkError struct {
	Operation string `json:"operation"`
	URL       string `json:"url"`
	Err       error  `json:"error"`
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s to %s: %v", e.Operation, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error for %s: %s", e.Field, e.Message)
}
