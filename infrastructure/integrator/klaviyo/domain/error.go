package domain

import (
	"errors"
	"fmt"
	"time"
)

type ErrorKind string

const (
	// ErrKindRateLimited is an HTTP 429; retryable with backoff.
	ErrKindRateLimited ErrorKind = "rate_limited"
	// ErrKindTransient is a 5xx; the request was fine, the platform was not.
	ErrKindTransient ErrorKind = "transient"
	// ErrKindRequestInvalid is any other 4xx; retrying cannot help.
	ErrKindRequestInvalid ErrorKind = "request_invalid"
	// ErrKindFatal is an auth failure (401/403); aborts the current domain.
	ErrKindFatal ErrorKind = "fatal"
)

// APIError is the structured form of a non-2xx platform response. The
// credential is never part of Detail.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Detail     string
	RetryAfter time.Duration
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("klaviyo: %s (status %d)", e.Kind, e.StatusCode)
	}
	return fmt.Sprintf("klaviyo: %s (status %d): %s", e.Kind, e.StatusCode, e.Detail)
}

func kindOf(err error) (ErrorKind, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	return "", false
}

func IsRateLimited(err error) bool {
	kind, ok := kindOf(err)
	return ok && kind == ErrKindRateLimited
}

func IsTransient(err error) bool {
	kind, ok := kindOf(err)
	return ok && kind == ErrKindTransient
}

func IsRequestInvalid(err error) bool {
	kind, ok := kindOf(err)
	return ok && kind == ErrKindRequestInvalid
}

func IsFatal(err error) bool {
	kind, ok := kindOf(err)
	return ok && kind == ErrKindFatal
}
