package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ADNAN-ZEYA/Website-Builder/internal/redact"
)

// DefaultModels is the candidate list tried in preference order when no
// models are configured explicitly.
var DefaultModels = []string{
	"gemini-2.0-flash-exp",
	"gemini-1.5-flash-latest",
	"gemini-1.5-flash",
	"gemini-1.5-pro-latest",
}

// DefaultFallbackPause is the pause between candidate attempts after a
// transient failure.
const DefaultFallbackPause = 500 * time.Millisecond

// transientMarkers is the allow-list of failure signatures that permit
// falling back to the next candidate model. Anything else aborts the whole
// operation on first occurrence: an unknown failure (bad request, auth,
// quota) would fail on every candidate anyway.
var transientMarkers = []string{
	"503",
	"overloaded",
	"unavailable",
	"not found",
	"404",
}

// transientStatusCodes are the provider status codes treated as transient.
var transientStatusCodes = map[int]bool{
	503: true,
	404: true,
}

// ModelCaller performs a single generation call against one named model.
// Implementations carry the provider credential and the fixed generation
// parameters (output length bound, sampling temperature).
type ModelCaller interface {
	GenerateText(ctx context.Context, model string, prompt Prompt) (string, error)
}

// Resolver obtains a raw text response by walking an ordered candidate model
// list, tolerating transient unavailability of individual models. Attempts
// are strictly sequential: a later candidate is only tried because the
// earlier ones failed.
type Resolver struct {
	caller ModelCaller
	models []string
	pause  time.Duration
	logger *slog.Logger
}

// NewResolver creates a Resolver over the given candidate models. The list
// is consumed strictly in the order given.
func NewResolver(caller ModelCaller, models []string, pause time.Duration, logger *slog.Logger) (*Resolver, error) {
	if caller == nil {
		return nil, fmt.Errorf("%w: model caller cannot be nil", ErrInvalidConfig)
	}
	if logger == nil {
		return nil, fmt.Errorf("%w: logger cannot be nil", ErrInvalidConfig)
	}
	if len(models) == 0 {
		models = DefaultModels
	}
	if pause <= 0 {
		pause = DefaultFallbackPause
	}

	return &Resolver{
		caller: caller,
		models: models,
		pause:  pause,
		logger: logger,
	}, nil
}

// Resolve returns exactly one of: the raw text response from the first
// candidate that succeeds, a *ModelsUnavailableError carrying the last
// transient failure after the list is exhausted, or the first non-transient
// provider error unchanged.
func (r *Resolver) Resolve(ctx context.Context, prompt Prompt) (string, error) {
	var lastErr error

	for i, model := range r.models {
		r.logger.InfoContext(ctx, "trying model",
			"model", model,
			"attempt", i+1,
			"candidates", len(r.models))

		text, err := r.caller.GenerateText(ctx, model, prompt)
		if err == nil {
			r.logger.InfoContext(ctx, "model call succeeded",
				"model", model,
				"response_length", len(text))
			return text, nil
		}

		if !IsTransient(err) {
			r.logger.ErrorContext(ctx, "model call failed with non-transient error, aborting",
				"model", model,
				"error", redact.Error(err))
			return "", err
		}

		r.logger.WarnContext(ctx, "model unavailable, falling back to next candidate",
			"model", model,
			"error", redact.Error(err))
		lastErr = err

		if i == len(r.models)-1 {
			break
		}

		select {
		case <-time.After(r.pause):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	if lastErr != nil {
		return "", &ModelsUnavailableError{LastErr: lastErr}
	}
	return "", ErrEmptyResponse
}

// IsTransient reports whether a provider failure matches the fixed
// allow-list of retryable signatures: known status codes on a typed
// *ProviderError, or any of the allow-listed substrings in the error text
// (case-insensitive).
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var provErr *ProviderError
	if errors.As(err, &provErr) && transientStatusCodes[provErr.StatusCode] {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
