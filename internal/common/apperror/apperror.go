// Package apperror defines the status-coded error returned by the service
// layer. Services are the only place an error gains an HTTP status and a
// user-facing message; handlers render it unchanged.
package apperror

import (
	"errors"
	"net/http"
)

// Code is the machine-readable error code rendered in error envelopes.
type Code string

const (
	CodeBadRequest   Code = "BAD_REQUEST"
	CodeNotFound     Code = "NOT_FOUND"
	CodeConflict     Code = "CONFLICT"
	CodeInternal     Code = "INTERNAL_ERROR"
	CodeUnauthorized Code = "UNAUTHORIZED"
)

// Error carries an HTTP status, an error code, a user message and the
// internal cause. Err is logged but never rendered to clients.
type Error struct {
	Status  int
	Code    Code
	Message string
	Details string
	Err     error
}

// Error returns the internal cause when present, otherwise the user message.
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	if e.Details != "" && e.Details != e.Message {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// Unwrap returns the internal cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// BadRequest reports malformed or missing input (400).
func BadRequest(message, details string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: CodeBadRequest, Message: message, Details: details}
}

// NotFound reports a missing record (404).
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Code: CodeNotFound, Message: message, Details: message}
}

// Conflict reports a uniqueness violation (409).
func Conflict(message, details string) *Error {
	return &Error{Status: http.StatusConflict, Code: CodeConflict, Message: message, Details: details}
}

// Internal reports a storage or object-storage failure (500). The cause is
// kept for logging only; clients see a generic detail.
func Internal(message string, err error) *Error {
	return &Error{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternal,
		Message: message,
		Details: "an internal error occurred",
		Err:     err,
	}
}

// Unauthorized reports a missing or invalid credential (401).
func Unauthorized(details string) *Error {
	return &Error{Status: http.StatusUnauthorized, Code: CodeUnauthorized, Message: "Unauthorized", Details: details}
}

// From returns err as an *Error. Errors without a status become Internal.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("Internal server error", err)
}

// IsStatus reports whether err carries the given HTTP status.
func IsStatus(err error, status int) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Status == status
}
