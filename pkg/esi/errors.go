package esi

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is the generic error kind for ESI failures: unexpected status
// codes, client errors (400, 403, 404), and network-level failures. More
// specific kinds (AuthenticationError, RateLimitError, ServerError) are used
// where the caller's remedy differs.
type APIError struct {
	// StatusCode is the HTTP status, or zero for network-level failures.
	StatusCode int

	// URL is the request URL.
	URL string

	// Body is the response body, when one was received.
	Body string

	// Message describes the failure.
	Message string

	// Err is the underlying transport error, if any.
	Err error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("unexpected status code %d: %s", e.StatusCode, e.Body)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// AuthenticationError indicates missing, invalid, or expired credentials:
// either no valid token could be obtained before dispatch, or ESI answered 401.
type AuthenticationError struct {
	Message string
	Err     error
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// RateLimitError indicates ESI throttling: 429 (standard throttling) or 420
// (the error budget is exhausted). Both carry the same remedy, back off and
// retry later than the built-in retry policy already did.
type RateLimitError struct {
	StatusCode int
	Body       string
}

func (e *RateLimitError) Error() string {
	if e.StatusCode == statusErrorLimited {
		return "error limit exceeded"
	}
	return "rate limit exceeded"
}

// ServerError indicates a 5xx response from ESI after retries were exhausted.
type ServerError struct {
	StatusCode int
	Body       string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Body)
}

// IsNotFound reports whether err is an ESI 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsForbidden reports whether err is an ESI 403.
func IsForbidden(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden
}

// IsBadRequest reports whether err is an ESI 400.
func IsBadRequest(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest
}
