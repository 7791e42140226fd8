package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse means the output was not JSON or failed the schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded means the output was cut off at MaxTokens.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// errorClass buckets an error for the retry policy.
type errorClass int

const (
	classFatal errorClass = iota
	classInvalid
	classTransient
)

func classify(err error) errorClass {
	var maxTok *ErrMaxTokensExceeded
	var invalid *ErrInvalidResponse
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return classFatal
	case errors.As(err, &maxTok):
		return classFatal
	case errors.As(err, &invalid):
		return classInvalid
	default:
		// Rate limits, outages and plain network errors.
		return classTransient
	}
}

// httpStatusError maps a provider HTTP status to the error taxonomy.
func httpStatusError(status int, err error) error {
	switch {
	case status == 429:
		return &ErrRateLimit{Err: err}
	default:
		return &ErrProviderUnavailable{Err: err}
	}
}
