package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the request conflicts with the current state of a resource.
var ErrConflict = errors.New("conflict with current state")

// ErrTransactionBalanced is returned when a caller tries to change or remove a balanced transaction.
// Balanced transactions are immutable.
var ErrTransactionBalanced = errors.New("transaction is balanced")

// ErrInternal indicates a storage or infrastructure failure. Details are logged, not returned.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code and a caller-safe message alongside the cause.
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

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError wraps ErrNotFound with a resource-specific message.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewInternalError hides the underlying cause behind ErrInternal.
// The cause must be logged by the caller before it is dropped.
func NewInternalError(message string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message, Err: ErrInternal}
}

// ValidationError reports every violated rule at once.
type ValidationError struct {
	Message  string
	Errors   []string
	Warnings []string
}

// NewValidationError creates a ValidationError. Message prefixes the joined error list.
func NewValidationError(message string, errs []string, warnings []string) *ValidationError {
	return &ValidationError{Message: message, Errors: errs, Warnings: warnings}
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(e.Errors, ", ")
}

// Is makes errors.Is(err, ErrValidation) hold for every ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// IsBusinessError reports whether err may cross the service boundary as is:
// an expected outcome, or an infrastructure failure already translated to ErrInternal.
func IsBusinessError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrDuplicate) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrTransactionBalanced) ||
		errors.Is(err, ErrInternal)
}

// StatusCode maps an error onto the HTTP status the handlers respond with.
func StatusCode(err error) int {
	var appErr *AppError
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrConflict), errors.Is(err, ErrTransactionBalanced):
		return http.StatusConflict
	case errors.As(err, &appErr) && appErr.Code != 0:
		return appErr.Code
	default:
		return http.StatusInternalServerError
	}
}
