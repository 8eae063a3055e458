package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hagio-gakuto/user-directory/domain/shared"
)

func TestHTTPStatusCode(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{CodeBadRequest, http.StatusBadRequest},
		{CodeValidation, http.StatusBadRequest},
		{CodeNotFound, http.StatusNotFound},
		{CodeConflict, http.StatusConflict},
		{CodeTooManyRequest, http.StatusTooManyRequests},
		{CodeInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, New(tt.code, "x").HTTPStatusCode(), string(tt.code))
	}
}

func TestFromDomainErrorClassifiesSentinels(t *testing.T) {
	notFound := FromDomainError(shared.NewNotFoundError("user", "abc"))
	assert.Equal(t, CodeNotFound, notFound.Code)
	assert.Contains(t, notFound.Message, "abc")

	conflict := FromDomainError(shared.NewConflictError("user", "duplicate"))
	assert.Equal(t, CodeConflict, conflict.Code)

	validation := FromDomainError(shared.NewRequiredFieldError("user", "メールアドレス"))
	assert.Equal(t, CodeValidation, validation.Code)
}

func TestFromDomainErrorHidesInternalCauses(t *testing.T) {
	cause := stderrors.New("dial tcp: connection refused")
	appErr := FromDomainError(cause)

	assert.Equal(t, CodeInternal, appErr.Code)
	assert.Equal(t, "internal server error", appErr.Message)
	assert.True(t, stderrors.Is(appErr, cause))
}

func TestFromDomainErrorKeepsExistingAppError(t *testing.T) {
	orig := Conflict("taken")
	assert.Same(t, orig, FromDomainError(orig))
}

func TestIs(t *testing.T) {
	err := NotFound("gone")
	require.True(t, Is(err, CodeNotFound))
	require.False(t, Is(err, CodeConflict))
	require.False(t, Is(stderrors.New("plain"), CodeNotFound))
}
