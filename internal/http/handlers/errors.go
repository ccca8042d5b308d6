// Package handlers defines the HTTP-layer error codes used across the API.
//
// Codes are lowercase snake_case and stable; clients branch on them for
// programmatic error handling while the message field stays human-readable.
// Handlers pick the most specific code and pass it to fail() together with
// the HTTP status.
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeUnauthorized     = "unauthorized"
	ErrCodeForbidden        = "forbidden"
	ErrCodeNotFound         = "not_found"
	ErrCodeRateLimited      = "too_many_requests"
	ErrCodeInternal         = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"

	// Domain-specific:
	ErrCodeSaveFailed   = "save_failed"
	ErrCodeDeleteFailed = "delete_failed"
	ErrCodeListFailed   = "list_failed"
)
