// Package redact strips credentials from strings before they are logged.
// Provider errors can echo request details back, including the API key, so
// everything logged from an external call path goes through here first.
package redact

import "regexp"

// RedactedKeyPlaceholder replaces anything that looks like an API key or token.
const RedactedKeyPlaceholder = "[REDACTED_KEY]"

var (
	// key=..., api_key: ..., token ... style assignments
	apiKeyRegex = regexp.MustCompile(
		`(?i)(api[_-]?key|token|secret|key|auth)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	// Google API keys have a fixed AIza prefix
	googleKeyRegex = regexp.MustCompile(`AIza[A-Za-z0-9_\-]{10,}`)
)

// String redacts credential-shaped substrings from the input.
func String(input string) string {
	if input == "" {
		return input
	}

	result := apiKeyRegex.ReplaceAllString(input, "${1}${2}"+RedactedKeyPlaceholder)
	result = googleKeyRegex.ReplaceAllString(result, RedactedKeyPlaceholder)
	return result
}

// Error redacts credential-shaped substrings from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
