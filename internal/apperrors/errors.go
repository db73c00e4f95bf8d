// Package apperrors defines the error taxonomy the API exposes. Every error
// carries the HTTP status it maps to, so the centralized error handler never
// needs to inspect error strings.
package apperrors

import (
	"fmt"
	"net/http"
)

// Code classifies an error for API clients.
type Code string

const (
	CodeInvalidInput      Code = "INVALID_INPUT"
	CodeNotFound          Code = "NOT_FOUND"
	CodeConflict          Code = "CONFLICT"
	CodeInsufficientStock Code = "INSUFFICIENT_STOCK"
	CodeInternal          Code = "INTERNAL"
)

// Error is the single error type the HTTP layer knows how to render.
// Message is client-facing; Err, when set, is the underlying cause and is
// only ever exposed outside production.
type Error struct {
	Code    Code
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Invalid reports a malformed or missing input field.
func Invalid(message string) *Error {
	return &Error{Code: CodeInvalidInput, Status: http.StatusBadRequest, Message: message}
}

// NotFound reports a referenced entity that does not exist.
func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Status: http.StatusNotFound, Message: message}
}

// Conflict reports a duplicate unique field. The API maps it to 400, not 409.
func Conflict(message string) *Error {
	return &Error{Code: CodeConflict, Status: http.StatusBadRequest, Message: message}
}

// InsufficientStock reports a stock reservation that cannot be satisfied.
func InsufficientStock(message string) *Error {
	return &Error{Code: CodeInsufficientStock, Status: http.StatusBadRequest, Message: message}
}

// Internal wraps an unclassified failure, usually from the store.
func Internal(message string, err error) *Error {
	return &Error{Code: CodeInternal, Status: http.StatusInternalServerError, Message: message, Err: err}
}
