package errs

import "errors"

// Sentinel errors shared across the api client and board layers
var (
	// Auth errors
	ErrUnauthorized      = errors.New("unauthorized")
	ErrNoRefreshToken    = errors.New("no refresh token available")
	ErrRefreshFailed     = errors.New("token refresh failed")
	ErrInvalidCredential = errors.New("invalid username or password")

	// Validation errors
	ErrValidation      = errors.New("validation error")
	ErrMissingDatetime = errors.New("reservation date and time required")

	// Transport errors
	ErrUnavailable = errors.New("backend unavailable")
	ErrNotFound    = errors.New("not found")

	// Order session errors
	ErrNoActiveOrder   = errors.New("no active order for table")
	ErrNoTableSelected = errors.New("no table selected")
)
