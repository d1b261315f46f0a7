package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidAmount indicates a negative, malformed or non-finite monetary amount.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrRateNotFound indicates that no direct or base-derived exchange path exists for a currency pair.
var ErrRateNotFound = errors.New("exchange rate not found")

// ErrUnknownCurrency indicates that a currency code has no active configuration.
var ErrUnknownCurrency = errors.New("unknown currency")

// ErrConfiguration indicates that stored currency configuration violates an invariant,
// e.g. zero or several default currencies.
var ErrConfiguration = errors.New("currency configuration error")

// AppError is an error carrying the HTTP status a handler should answer with.
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

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewValidationError returns an AppError that matches ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}
