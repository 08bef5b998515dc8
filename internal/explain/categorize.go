package explain

import (
	"context"
	"errors"
	"strings"
)

// Failure categories surfaced as diagnostic metadata when the assistant
// falls back to the raw summary.
const (
	CategoryAuth      = "auth"
	CategoryRateLimit = "rate_limit"
	CategoryTimeout   = "timeout"
	CategoryEmpty     = "empty_response"
	CategoryRequest   = "request_failed"
)

// Categorize maps an explanation failure to a short diagnostic tag. The
// tag is shown to the user instead of the raw error, which may carry
// stack-trace noise from the transport.
func Categorize(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyResponse):
		return CategoryEmpty
	case errors.Is(err, context.DeadlineExceeded):
		return CategoryTimeout
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "401") || strings.Contains(msg, "403") ||
		strings.Contains(msg, "unauthorized") || strings.Contains(msg, "api key") ||
		strings.Contains(msg, "authentication"):
		return CategoryAuth
	case strings.Contains(msg, "429") || strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "quota"):
		return CategoryRateLimit
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline"):
		return CategoryTimeout
	default:
		return CategoryRequest
	}
}
