package ai

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Kind classifies a failure into the library's error taxonomy. Callers
// branch on it to decide whether to fail fast, back off, or retry; the
// library itself never retries.
type Kind string

const (
	// KindConfig is an empty or invalid credential/model at construction.
	// Fatal, reported immediately.
	KindConfig Kind = "config"
	// KindNetwork is a connection failure, timeout or TLS failure. Retry
	// policy is the caller's decision.
	KindNetwork Kind = "network"
	// KindAuth is an authentication/authorization rejection from the
	// provider. Fatal for the given key.
	KindAuth Kind = "auth"
	// KindRateLimited signals provider throttling. RetryAfter carries the
	// provider's backoff hint when available.
	KindRateLimited Kind = "rate_limited"
	// KindInvalidRequest is a provider rejection of the payload shape or
	// semantics (e.g. out-of-range sampling parameter).
	KindInvalidRequest Kind = "invalid_request"
	// KindServer is a provider-side failure. The caller may retry.
	KindServer Kind = "server"
	// KindStreamDecode is a malformed or truncated streaming payload.
	KindStreamDecode Kind = "stream_decode"
)

// Error is the typed error returned by every failing operation in this
// library. It always carries a Kind; StatusCode, RetryAfter and the wrapped
// Err are populated when known.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int           // HTTP status, 0 when the failure never reached the provider
	RetryAfter time.Duration // backoff hint for KindRateLimited, 0 if the provider gave none
	Err        error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the wrapped underlying error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates an Error of the given kind.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError creates an Error of the given kind wrapping an underlying error.
func WrapError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// IsKind reports whether err is (or wraps) an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var aiErr *Error
	if errors.As(err, &aiErr) {
		return aiErr.Kind == kind
	}
	return false
}

// ErrorFromStatus maps a non-2xx HTTP status onto the error taxonomy:
// 400 becomes an invalid-request error, 401/403 an auth error, 429 a
// rate-limit error (with the Retry-After hint when present), 5xx a server
// error, and anything else a server error too.
func ErrorFromStatus(statusCode int, body string, retryAfter time.Duration) *Error {
	apiErr := &Error{
		Message:    body,
		StatusCode: statusCode,
		RetryAfter: retryAfter,
	}

	switch {
	case statusCode == http.StatusBadRequest:
		apiErr.Kind = KindInvalidRequest
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		apiErr.Kind = KindAuth
	case statusCode == http.StatusTooManyRequests:
		apiErr.Kind = KindRateLimited
	default:
		apiErr.Kind = KindServer
	}

	return apiErr
}
