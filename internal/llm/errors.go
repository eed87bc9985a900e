package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrAuth indicates the backend rejected the configured credential
// (401/403). Fatal: the caller should prompt for configuration, never retry.
type ErrAuth struct {
	Err error
}

func (e *ErrAuth) Error() string {
	return fmt.Sprintf("authentication failed: %v", e.Err)
}

func (e *ErrAuth) Unwrap() error { return e.Err }

// ErrQuotaExceeded indicates the provider-side quota or credit balance is
// exhausted. Fatal for the remainder of the billing period; never retried.
type ErrQuotaExceeded struct {
	Err error
}

func (e *ErrQuotaExceeded) Error() string {
	return fmt.Sprintf("provider quota exceeded: %v", e.Err)
}

func (e *ErrQuotaExceeded) Unwrap() error { return e.Err }

// ErrUsageLimit indicates a local daily ceiling was reached before the
// request was sent. Resource names which ceiling: "calls" or "tokens".
type ErrUsageLimit struct {
	Resource string
	Limit    int
}

func (e *ErrUsageLimit) Error() string {
	return fmt.Sprintf("daily %s limit reached (%d); try again tomorrow", e.Resource, e.Limit)
}

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the backend returned content that does not
// conform to the requested schema or expected shape.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid backend response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("backend unavailable: %v", e.Err)
	}
	return "backend unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the response was truncated because it
// hit the MaxTokens limit.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "backend response truncated: max tokens exceeded"
}
