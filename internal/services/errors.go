// Package services implements the business logic between the HTTP handlers
// and the record store / upstream platform clients. This file centralizes
// the service-level error taxonomy so handlers can translate failures into
// HTTP statuses consistently.
//
// Two families exist:
//   - not-found sentinels (requested entity or upstream content does not
//     exist), which handlers map to 404;
//   - *UpstreamError (an upstream call failed, timed out, or returned a
//     malformed payload), which handlers map to 500 with a generic body,
//     logging the wrapped cause server-side only.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrStreamerNotFound indicates the requested slug is not seeded.
	ErrStreamerNotFound = errors.New("streamer not found")

	// ErrPlatformNotConfigured indicates the streamer has no username for
	// the requested platform; no upstream call is attempted.
	ErrPlatformNotConfigured = errors.New("platform username not configured")

	// ErrTwitchUserNotFound indicates the configured Twitch login does not
	// resolve to an account.
	ErrTwitchUserNotFound = errors.New("twitch user not found")

	// ErrChannelNotFound indicates neither the username lookup nor the
	// channel search resolved the configured YouTube handle.
	ErrChannelNotFound = errors.New("youtube channel not found")

	// ErrNoContent indicates the platform resolved the account but has no
	// published content for it.
	ErrNoContent = errors.New("no content found")

	// ErrMalformedResponse indicates an upstream payload failed validation;
	// always wrapped in an UpstreamError.
	ErrMalformedResponse = errors.New("malformed upstream response")
)

// IsNotFound reports whether err belongs to the 404 family.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrStreamerNotFound) ||
		errors.Is(err, ErrPlatformNotConfigured) ||
		errors.Is(err, ErrTwitchUserNotFound) ||
		errors.Is(err, ErrChannelNotFound) ||
		errors.Is(err, ErrNoContent)
}

// UpstreamError wraps a failed call to a platform API with enough context
// (platform, operation) to diagnose from logs. The wrapped cause is never
// exposed to HTTP callers.
type UpstreamError struct {
	Platform string
	Op       string
	Err      error
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Platform, e.Op, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *UpstreamError) Unwrap() error { return e.Err }

// upstreamErr is the construction shorthand used by the fetcher services.
func upstreamErr(platform, op string, err error) error {
	return &UpstreamError{Platform: platform, Op: op, Err: err}
}
