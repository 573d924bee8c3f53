// Package handlers defines HTTP-layer error codes used across all API
// endpoints. Codes are stable, lowercase, machine-readable strings passed
// to fail() alongside the HTTP status; clients branch on the code, humans
// read the message.
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeNotFound         = "not_found"
	ErrCodeRateLimited      = "too_many_requests"
	ErrCodeInternal         = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"

	// Domain-specific:
	ErrCodeListFailed    = "list_failed"
	ErrCodeUpstreamError = "upstream_error"
)
