package me

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hagio-gakuto/user-directory/domain/shared"
	"github.com/hagio-gakuto/user-directory/domain/user"
	"github.com/hagio-gakuto/user-directory/infrastructure/persistence/memory"
)

func TestGetProfile(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := NewApplicationService(repo)
	ctx := context.Background()

	u, err := user.NewUser("taro@example.com", user.RoleAdmin, "太郎", "山田", nil, "system")
	require.NoError(t, err)
	created, err := repo.Create(ctx, u)
	require.NoError(t, err)

	profile, err := svc.GetProfile(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, created.ID(), profile.ID)
	assert.Equal(t, "山田 太郎", profile.FullName)
	assert.Equal(t, "taro@example.com", profile.Email)
	assert.Equal(t, "admin", profile.Role)
}

func TestGetProfileUnknownActor(t *testing.T) {
	svc := NewApplicationService(memory.NewUserRepository())

	_, err := svc.GetProfile(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestGetProfileDeletedActor(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := NewApplicationService(repo)
	ctx := context.Background()

	u, err := user.NewUser("taro@example.com", user.RoleUser, "太郎", "山田", nil, "system")
	require.NoError(t, err)
	created, err := repo.Create(ctx, u)
	require.NoError(t, err)

	created.Delete("admin-1", time.Now())
	_, err = repo.Update(ctx, created)
	require.NoError(t, err)

	_, err = svc.GetProfile(ctx, created.ID())
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}
