package llm

import "strings"

// The completion provider surfaces failures as HTTP status classes. The
// client library folds those into error text, so classification works on
// substrings, same as the upstream messages.

// IsAuthError checks if the error is a permanent authentication failure
// (HTTP 401 / bad API key). Auth failures must not be retried.
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "401") ||
		strings.Contains(msg, "unauthorized") ||
		strings.Contains(msg, "authentication") ||
		strings.Contains(msg, "invalid api key")
}

// IsRateLimitError checks if the error is an HTTP 429 / quota failure.
func IsRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "quota")
}
