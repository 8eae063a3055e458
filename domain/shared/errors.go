/*
Package shared holds the error vocabulary common to every aggregate.

Sentinel errors support errors.Is() checks without leaking transport
concerns into the domain. DomainError captures the stack at creation
time and formats it lazily, so the API layer can log the point of
failure without paying for formatting on the happy path.
*/
package shared

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

var (
	// ErrNotFound signals that a lookup returned no (active) record.
	ErrNotFound = errors.New("not found")

	// ErrConflict signals a uniqueness violation surfaced by the store.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput signals a value-object or entity validation failure.
	ErrInvalidInput = errors.New("invalid input")
)

// DomainError is a structured error carrying business context and the
// stack of its creation point. It supports errors.Is / errors.As via
// Unwrap.
type DomainError struct {
	// Err is the underlying sentinel, used for errors.Is checks.
	Err error

	// Entity names the aggregate the error belongs to ("user",
	// "search condition").
	Entity string

	// Field optionally names the offending field for validation errors.
	Field string

	// Message is the human-readable description.
	Message string

	stack []uintptr
}

func (e *DomainError) Error() string { return e.Message }

func (e *DomainError) Unwrap() error { return e.Err }

// Stack formats the captured stack on demand. Only called when a log
// line is actually emitted.
func (e *DomainError) Stack() []string { return FormatStack(e.stack) }

// CaptureStack records the current call stack. skip is usually 3:
// Callers, CaptureStack and the NewXxxError constructor itself.
func CaptureStack(skip int) []uintptr {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	return pcs[:n]
}

// FormatStack renders captured frames, dropping runtime internals and
// capping the output at 10 frames.
func FormatStack(stack []uintptr) []string {
	if len(stack) == 0 {
		return nil
	}

	frames := runtime.CallersFrames(stack)
	var result []string
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "runtime/") {
			result = append(result, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		}
		if !more || len(result) > 10 {
			break
		}
	}
	return result
}

// NewNotFoundError builds a "not found" error for the given entity and id.
func NewNotFoundError(entity, id string) error {
	return &DomainError{
		Err:     ErrNotFound,
		Entity:  entity,
		Message: entity + " not found: " + id,
		stack:   CaptureStack(3),
	}
}

// NewConflictError builds a uniqueness-conflict error with a
// caller-supplied, user-facing message.
func NewConflictError(entity, message string) error {
	return &DomainError{
		Err:     ErrConflict,
		Entity:  entity,
		Message: message,
		stack:   CaptureStack(3),
	}
}

// NewRequiredFieldError reports a field that was empty after trimming.
func NewRequiredFieldError(entity, field string) error {
	return &DomainError{
		Err:     ErrInvalidInput,
		Entity:  entity,
		Field:   field,
		Message: field + "は必須です",
		stack:   CaptureStack(3),
	}
}

// NewInvalidFormatError reports a field whose shape is not acceptable.
func NewInvalidFormatError(entity, field string) error {
	return &DomainError{
		Err:     ErrInvalidInput,
		Entity:  entity,
		Field:   field,
		Message: field + "の形式が正しくありません",
		stack:   CaptureStack(3),
	}
}

// NewValidationError reports any other validation failure with a
// free-form reason.
func NewValidationError(entity, field, reason string) error {
	return &DomainError{
		Err:     ErrInvalidInput,
		Entity:  entity,
		Field:   field,
		Message: reason,
		stack:   CaptureStack(3),
	}
}

// Stacker is implemented by errors that carry a creation-point stack.
type Stacker interface {
	Stack() []string
}
