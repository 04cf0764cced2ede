// Package apperror defines the error kinds shared by every bounded context.
// Domain packages declare their sentinel errors with Invalid, NotFound or Conflict;
// pkg/errhttp maps the kind to an HTTP status code at the boundary.
package apperror

import (
	"errors"
)

// Error kinds. Match with errors.Is.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

// AppError carries a client-facing message and the kind it belongs to.
type AppError struct {
	Err     error  // one of the kind sentinels above
	Message string // human-readable, returned verbatim to the caller
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Invalid returns an AppError of kind ErrValidation (HTTP 400).
func Invalid(message string) *AppError {
	return &AppError{Err: ErrValidation, Message: message}
}

// NotFound returns an AppError of kind ErrNotFound (HTTP 404).
func NotFound(message string) *AppError {
	return &AppError{Err: ErrNotFound, Message: message}
}

// Conflict returns an AppError of kind ErrConflict (HTTP 409).
func Conflict(message string) *AppError {
	return &AppError{Err: ErrConflict, Message: message}
}

// Message returns the message of the first AppError in err's chain,
// or err.Error() when the chain holds none.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
