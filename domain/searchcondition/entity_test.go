package searchcondition

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hagio-gakuto/user-directory/domain/shared"
)

func reconstructed(t *testing.T) *SearchCondition {
	t.Helper()
	now := time.Now()
	return Reconstruct(Props{
		ID:        "0192bbbb-0000-7000-8000-000000000001",
		FormType:  "user-management",
		Name:      "管理者ユーザー",
		URLParams: "role=admin&page=1",
		CreatedAt: now,
		CreatedBy: "system",
		UpdatedAt: now,
		UpdatedBy: "system",
	})
}

func TestNewRequiresFormTypeAndName(t *testing.T) {
	_, err := New("", "管理者ユーザー", "role=admin", "system")
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))

	_, err = New("user-management", "  ", "role=admin", "system")
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))
}

func TestNewLeavesIdentityUnset(t *testing.T) {
	c, err := New("user-management", "管理者ユーザー", "role=admin&page=1", "system")
	require.NoError(t, err)

	assert.False(t, c.HasID())
	assert.Panics(t, func() { _ = c.ID() })
	assert.Panics(t, func() { _ = c.CreatedAt() })
	assert.Equal(t, "system", c.CreatedBy())
	assert.Equal(t, "system", c.UpdatedBy())
}

func TestChangeName(t *testing.T) {
	c := reconstructed(t)
	before := c.UpdatedAt()

	time.Sleep(time.Millisecond)
	require.NoError(t, c.ChangeName("一般ユーザー", "admin1"))

	assert.Equal(t, "一般ユーザー", c.Name())
	assert.Equal(t, "admin1", c.UpdatedBy())
	assert.True(t, c.UpdatedAt().After(before))

	err := c.ChangeName(" ", "admin1")
	require.Error(t, err)
	assert.Equal(t, "一般ユーザー", c.Name())
}

func TestDelete(t *testing.T) {
	c := reconstructed(t)
	deletedAt := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	c.Delete("admin1", deletedAt)

	require.NotNil(t, c.DeletedAt())
	assert.Equal(t, deletedAt, *c.DeletedAt())
	require.NotNil(t, c.DeletedBy())
	assert.Equal(t, "admin1", *c.DeletedBy())
	assert.True(t, c.IsDeleted())
}

func TestPrimitives(t *testing.T) {
	c := reconstructed(t)
	p := c.Primitives()

	assert.Equal(t, c.ID(), p.ID)
	assert.Equal(t, "user-management", p.FormType)
	assert.Equal(t, "管理者ユーザー", p.Name)
	assert.Equal(t, "role=admin&page=1", p.URLParams)
	assert.Nil(t, p.DeletedAt)
}
