package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation package
var (
	// ErrEmptyResponse is returned when the resolver loop finishes without a
	// response and without recording a transient failure.
	ErrEmptyResponse = errors.New("failed to generate content")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// ModelsUnavailableError reports that every candidate model failed with a
// transient error. LastErr holds the error from the final candidate, which
// callers surface to clients per the fallback contract.
type ModelsUnavailableError struct {
	LastErr error
}

func (e *ModelsUnavailableError) Error() string {
	return fmt.Sprintf("all candidate models are currently unavailable: %v", e.LastErr)
}

func (e *ModelsUnavailableError) Unwrap() error {
	return e.LastErr
}

// ProviderError is a provider failure carrying the HTTP status code reported
// by the model API, when one was available. Adapters convert their SDK's
// typed errors into this so the resolver can classify failures without
// importing the SDK.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("provider error %d: %s", e.StatusCode, e.Message)
	}
	return "provider error: " + e.Message
}
