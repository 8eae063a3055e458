/*
Package user defines the user aggregate, its value objects and its
repository contract.
*/
package user

import (
	"github.com/hagio-gakuto/user-directory/domain/shared"
)

// User-facing messages stay in Japanese to match the admin console.
const (
	msgEmailRequired      = "メールアドレスは必須です"
	msgEmailInvalidFormat = "メールアドレスの形式が正しくありません"
	msgNameRequired       = "姓・名は必須です"
	msgEmailExists        = "このメールアドレスは既に登録されています"
	msgUserNotFound       = "ユーザーが見つかりません"
)

// NewUserNotFoundError reports a lookup miss (absent or soft-deleted).
func NewUserNotFoundError(id string) error {
	return &userError{
		sentinel: shared.ErrNotFound,
		message:  msgUserNotFound + ": " + id,
		stack:    shared.CaptureStack(3),
	}
}

// NewEmailAlreadyExistsError reports a uniqueness violation on email.
func NewEmailAlreadyExistsError(email string) error {
	return &userError{
		sentinel: shared.ErrConflict,
		field:    "email",
		message:  msgEmailExists + ": " + email,
		stack:    shared.CaptureStack(3),
	}
}

func NewRequiredEmailError() error {
	return &userError{
		sentinel: shared.ErrInvalidInput,
		field:    "email",
		message:  msgEmailRequired,
		stack:    shared.CaptureStack(3),
	}
}

func NewInvalidEmailFormatError(raw string) error {
	return &userError{
		sentinel: shared.ErrInvalidInput,
		field:    "email",
		message:  msgEmailInvalidFormat,
		stack:    shared.CaptureStack(3),
	}
}

func NewRequiredNameError() error {
	return &userError{
		sentinel: shared.ErrInvalidInput,
		field:    "name",
		message:  msgNameRequired,
		stack:    shared.CaptureStack(3),
	}
}

func NewInvalidRoleError(raw string) error {
	return &userError{
		sentinel: shared.ErrInvalidInput,
		field:    "role",
		message:  "権限はuser、adminのいずれかである必要があります: " + raw,
		stack:    shared.CaptureStack(3),
	}
}

func NewInvalidGenderError(raw string) error {
	return &userError{
		sentinel: shared.ErrInvalidInput,
		field:    "gender",
		message:  "性別はmale、female、otherのいずれかである必要があります: " + raw,
		stack:    shared.CaptureStack(3),
	}
}

type userError struct {
	sentinel error
	field    string
	message  string
	stack    []uintptr
}

func (e *userError) Error() string   { return e.message }
func (e *userError) Unwrap() error   { return e.sentinel }
func (e *userError) Stack() []string { return shared.FormatStack(e.stack) }
