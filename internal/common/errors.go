// Package common provides shared utilities and types used across the application.
package common

import "errors"

// Common application errors.
var (
	// API errors.
	ErrRateLimit = errors.New("rate limit exceeded")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)
