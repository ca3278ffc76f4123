// Package apperr defines the error taxonomy shared by the command layer,
// the generative services and the HTTP handlers. Callers classify an
// error with errors.Is against the sentinels below; only the API layer
// translates them into status codes.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks malformed or missing caller input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound marks a referenced pantry or ingredient that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a duplicate pantry or ingredient name.
	ErrConflict = errors.New("conflict")

	// ErrUpstreamUnavailable marks a failed call to the generative API
	// (network error, auth error, rate limit, non-2xx status).
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrBadUpstreamResponse marks a generative API reply that could not
	// be parsed or did not match the expected schema.
	ErrBadUpstreamResponse = errors.New("bad upstream response")
)

// InvalidArgumentf wraps ErrInvalidArgument with a formatted message.
func InvalidArgumentf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}

// NotFoundf wraps ErrNotFound with a formatted message.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrNotFound}, args...)...)
}

// Conflictf wraps ErrConflict with a formatted message.
func Conflictf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrConflict}, args...)...)
}

// UpstreamUnavailablef wraps ErrUpstreamUnavailable with a formatted message.
func UpstreamUnavailablef(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrUpstreamUnavailable}, args...)...)
}

// BadUpstreamResponsef wraps ErrBadUpstreamResponse with a formatted message.
func BadUpstreamResponsef(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrBadUpstreamResponse}, args...)...)
}
