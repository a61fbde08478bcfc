package llm

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey indicates the generation service cannot be called because
// no credential is configured. Callers fall back without attempting a call.
var ErrMissingAPIKey = errors.New("generation service API key is not configured")

// ErrServiceStatus indicates the generation service answered with a
// non-success status. It carries the status code and response body.
type ErrServiceStatus struct {
	StatusCode int
	Body       string
}

func (e *ErrServiceStatus) Error() string {
	return fmt.Sprintf("generation service error: status %d: %s", e.StatusCode, e.Body)
}

// ErrServiceUnavailable indicates the generation service is unreachable
// (network failure, timeout, connection refused).
type ErrServiceUnavailable struct {
	Err error
}

func (e *ErrServiceUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation service unavailable: %v", e.Err)
	}
	return "generation service unavailable"
}

func (e *ErrServiceUnavailable) Unwrap() error { return e.Err }

// ErrEmptyResponse indicates the service answered successfully but returned
// no usable content.
var ErrEmptyResponse = errors.New("generation service returned an empty response")
