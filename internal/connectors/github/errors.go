package github

import (
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/ghtrend/internal/core/domain"
)

// NetworkError represents a transport failure: the request never produced
// a response.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("github: %s: %v", e.Op, e.Err)
}

// Unwrap exposes both the domain classification and the cause.
func (e *NetworkError) Unwrap() []error {
	return []error{domain.ErrNetwork, e.Err}
}

// ParseError represents a response body that could not be interpreted.
type ParseError struct {
	Op  string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("github: %s: unexpected response: %v", e.Op, e.Err)
}

// Unwrap exposes both the domain classification and the cause.
func (e *ParseError) Unwrap() []error {
	return []error{domain.ErrParse, e.Err}
}

// RateLimitError represents a rate limit exceeded error with reset time.
type RateLimitError struct {
	ResetAt   time.Time
	Remaining int
	Limit     int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("github: rate limit exceeded, resets at %s", e.ResetAt.Format(time.RFC3339))
}

// Unwrap classifies a refused request as a network error.
func (e *RateLimitError) Unwrap() error {
	return domain.ErrNetwork
}

// APIError represents a GitHub API error response.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// Unwrap classifies a refused request as a network error.
func (e *APIError) Unwrap() error {
	return domain.ErrNetwork
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}

// IsNetwork checks if the error is a transport or response status failure.
func IsNetwork(err error) bool {
	return errors.Is(err, domain.ErrNetwork)
}

// IsParse checks if the error indicates an unexpected response body.
func IsParse(err error) bool {
	return errors.Is(err, domain.ErrParse)
}

// IsUnprocessable checks if the API rejected the query itself,
// e.g. a page past the 1000-result search window.
func IsUnprocessable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 422
	}
	return false
}
