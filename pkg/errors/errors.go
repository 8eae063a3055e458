// Package errors defines the application-level error codes the API
// boundary maps to HTTP statuses. Domain errors are classified here via
// errors.Is on the shared sentinels; transport concerns stay out of the
// domain layer.
package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/hagio-gakuto/user-directory/domain/shared"
)

// ErrorCode is a stable, machine-readable error identifier.
type ErrorCode string

const (
	CodeInternal       ErrorCode = "INTERNAL_ERROR"
	CodeBadRequest     ErrorCode = "BAD_REQUEST"
	CodeNotFound       ErrorCode = "NOT_FOUND"
	CodeConflict       ErrorCode = "CONFLICT"
	CodeValidation     ErrorCode = "VALIDATION_ERROR"
	CodeTooManyRequest ErrorCode = "TOO_MANY_REQUESTS"
)

// AppError pairs an error code with a user-facing message.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// HTTPStatusCode returns the transport status for the code.
func (e *AppError) HTTPStatusCode() int {
	switch e.Code {
	case CodeBadRequest, CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeTooManyRequest:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// New creates an AppError without an underlying cause.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func BadRequest(message string) *AppError { return New(CodeBadRequest, message) }

func NotFound(message string) *AppError { return New(CodeNotFound, message) }

func Conflict(message string) *AppError { return New(CodeConflict, message) }

func Validation(message string) *AppError { return New(CodeValidation, message) }

func Internal(message string) *AppError { return New(CodeInternal, message) }

func TooManyRequests(message string) *AppError { return New(CodeTooManyRequest, message) }

// Is reports whether err carries the given code.
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// FromDomainError classifies a domain error into an AppError. The
// domain message is kept verbatim for NotFound / Conflict / Validation
// kinds; everything else becomes an internal error whose real cause is
// only logged, never shown.
func FromDomainError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, shared.ErrNotFound):
		return Wrap(err, CodeNotFound, err.Error())
	case errors.Is(err, shared.ErrConflict):
		return Wrap(err, CodeConflict, err.Error())
	case errors.Is(err, shared.ErrInvalidInput):
		return Wrap(err, CodeValidation, err.Error())
	default:
		return Wrap(err, CodeInternal, "internal server error")
	}
}
