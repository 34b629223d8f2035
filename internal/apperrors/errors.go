package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that an operation was rejected because the resource is
// still referenced elsewhere (e.g. deleting a category that has transactions).
var ErrConflict = errors.New("resource conflict")

// ErrUnknownCurrency indicates that a referenced currency has no known rate,
// neither in history nor in the current rate table.
var ErrUnknownCurrency = errors.New("unknown currency")

// AppError wraps a lower-level failure with an HTTP-ish status code and a message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a generic AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError creates an error that matches ErrValidation under errors.Is.
func NewValidationError(message string) error {
	return fmt.Errorf("%w: %s", ErrValidation, message)
}

// NewNotFoundError creates an error that matches ErrNotFound under errors.Is.
func NewNotFoundError(message string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, message)
}

// NewConflictError creates an error that matches ErrConflict under errors.Is.
func NewConflictError(message string) error {
	return fmt.Errorf("%w: %s", ErrConflict, message)
}

// NewUnknownCurrencyError creates an error that matches ErrUnknownCurrency under errors.Is.
func NewUnknownCurrencyError(currency string) error {
	return fmt.Errorf("%w: %s", ErrUnknownCurrency, currency)
}
