package api

import (
	"errors"
	"fmt"
	"net/http"
)

// NetworkErrorDetail is the detail string carried by transport-level
// failures, so callers can substitute a friendlier message.
const NetworkErrorDetail = "Network Error"

// FieldViolation is a single field-level validation failure reported by the
// API. Name is a dotted/bracketed path into the submitted payload.
type FieldViolation struct {
	Name        string `json:"name"`
	UserMessage string `json:"userMessage"`
}

// RequestError is the structured error the back-office API rejects with.
// Status mirrors the HTTP status; Objects is only present on validation
// failures.
type RequestError struct {
	Detail  string           `json:"detail"`
	Objects []FieldViolation `json:"objects,omitempty"`
	Status  int              `json:"status"`
}

func (e *RequestError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// AsRequestError extracts a RequestError from an error chain, if present.
func AsRequestError(err error) (*RequestError, bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is a structured 404 rejection.
func IsNotFound(err error) bool {
	reqErr, ok := AsRequestError(err)
	return ok && reqErr.Status == http.StatusNotFound
}

// IsForbidden reports whether err is a structured 403 rejection.
func IsForbidden(err error) bool {
	reqErr, ok := AsRequestError(err)
	return ok && reqErr.Status == http.StatusForbidden
}

// IsValidation reports whether err carries field-level violations.
func IsValidation(err error) bool {
	reqErr, ok := AsRequestError(err)
	return ok && len(reqErr.Objects) > 0
}

// IsNetwork reports whether err is a transport-level failure rather than an
// API rejection.
func IsNetwork(err error) bool {
	reqErr, ok := AsRequestError(err)
	return ok && reqErr.Detail == NetworkErrorDetail
}
