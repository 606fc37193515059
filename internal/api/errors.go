package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ADNAN-ZEYA/Website-Builder/internal/generation"
)

// MapGenerationError maps a generation failure to an HTTP status code and a
// human-readable detail string, per the fallback contract:
//
//   - exhausted candidate list (all transient) -> 503 naming the last error
//   - no response and no recorded error -> 500 "failed to generate content"
//   - anything else (fatal provider error, extraction failure) -> 500 with
//     the error text
func MapGenerationError(err error) (int, string) {
	var unavailable *generation.ModelsUnavailableError
	switch {
	case errors.As(err, &unavailable):
		return http.StatusServiceUnavailable, fmt.Sprintf(
			"All models are currently unavailable. Please try again in a few moments. Last error: %v",
			unavailable.LastErr)

	case errors.Is(err, generation.ErrEmptyResponse):
		return http.StatusInternalServerError, "Failed to generate content"

	default:
		return http.StatusInternalServerError, err.Error()
	}
}

// SanitizeValidationError reduces a validator error to a user-friendly
// message naming the offending field, without echoing internal struct paths.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'GenerateSiteRequest.Prompt' Error:Field
	// validation for 'Prompt' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}
				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, validationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// validationTagMessage maps validation tags to user-friendly error messages
func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
