/*
Package searchcondition defines the saved-search-condition aggregate: a
named, reusable set of URL filter parameters for one admin form.
*/
package searchcondition

import (
	"github.com/hagio-gakuto/user-directory/domain/shared"
)

const (
	msgNotFound     = "検索条件が見つかりません"
	msgNameExists   = "この名前の検索条件は既に登録されています"
	msgFormRequired = "フォームタイプは必須です"
	msgNameRequired = "名前は必須です"
)

// NewNotFoundError reports a lookup miss (absent or soft-deleted).
func NewNotFoundError(id string) error {
	return &conditionError{
		sentinel: shared.ErrNotFound,
		message:  msgNotFound + ": " + id,
		stack:    shared.CaptureStack(3),
	}
}

// NewNameAlreadyExistsError reports a uniqueness violation on name.
func NewNameAlreadyExistsError(name string) error {
	return &conditionError{
		sentinel: shared.ErrConflict,
		field:    "name",
		message:  msgNameExists + ": " + name,
		stack:    shared.CaptureStack(3),
	}
}

func NewRequiredFormTypeError() error {
	return &conditionError{
		sentinel: shared.ErrInvalidInput,
		field:    "formType",
		message:  msgFormRequired,
		stack:    shared.CaptureStack(3),
	}
}

func NewRequiredNameError() error {
	return &conditionError{
		sentinel: shared.ErrInvalidInput,
		field:    "name",
		message:  msgNameRequired,
		stack:    shared.CaptureStack(3),
	}
}

type conditionError struct {
	sentinel error
	field    string
	message  string
	stack    []uintptr
}

func (e *conditionError) Error() string   { return e.message }
func (e *conditionError) Unwrap() error   { return e.sentinel }
func (e *conditionError) Stack() []string { return shared.FormatStack(e.stack) }
