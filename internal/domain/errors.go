package domain

import "errors"

// Sentinel errors for panel error classification.
// The panel client wraps these so the CLI can handle error categories
// uniformly without inspecting HTTP status codes.
//
//	return fmt.Errorf("failed to create server: %w", domain.ErrConflict)
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized indicates the request was rejected due to
	// invalid, expired, or missing credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates the panel throttled the request.
	ErrRateLimited = errors.New("rate limited")

	// ErrConflict indicates a state or uniqueness conflict, such as
	// a duplicate username or an allocation that was claimed in the
	// meantime.
	ErrConflict = errors.New("conflict")

	// ErrValidation indicates the panel rejected the request body.
	ErrValidation = errors.New("validation failed")
)
