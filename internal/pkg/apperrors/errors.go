package apperrors

import "errors"

// The closed set of failure kinds this layer produces. Every error
// returned by a repository or service unwraps to exactly one of these,
// and the HTTP boundary maps each kind to a distinct status code.
var (
	// ErrNotFound means a query expected at least one row and got zero.
	ErrNotFound = errors.New("resource not found")

	// ErrDBError is any other store failure: connectivity, constraint
	// violation, malformed statement. The message never carries raw
	// store error text.
	ErrDBError = errors.New("database error")

	// ErrInvalidInput means the payload or an argument failed shape
	// validation before reaching the store.
	ErrInvalidInput = errors.New("invalid input")
)

// AppError pairs a taxonomy kind with a human-readable message.
type AppError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

// Unwrap exposes the taxonomy kind to errors.Is.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a NotFound error with a message.
func NewNotFoundError(message string) error {
	return &AppError{Err: ErrNotFound, Message: message}
}

// NewDBError creates a generic store error with a sanitized message.
func NewDBError(message string) error {
	return &AppError{Err: ErrDBError, Message: message}
}

// NewInvalidInputError creates an InvalidInput error with a message.
func NewInvalidInputError(message string) error {
	return &AppError{Err: ErrInvalidInput, Message: message}
}
