package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hagio-gakuto/user-directory/domain/searchcondition"
	"github.com/hagio-gakuto/user-directory/domain/shared"
)

func mustCreateCondition(t *testing.T, repo *SearchConditionRepository, formType, name string) *searchcondition.SearchCondition {
	t.Helper()
	c, err := searchcondition.New(formType, name, "role=admin", "admin-1")
	require.NoError(t, err)
	created, err := repo.Create(context.Background(), c)
	require.NoError(t, err)
	return created
}

func TestSearchConditionRepositoryCreateAndFind(t *testing.T) {
	repo := NewSearchConditionRepository()
	created := mustCreateCondition(t, repo, "user", "管理者のみ")

	assert.True(t, created.HasID())

	found, err := repo.FindByID(context.Background(), created.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "管理者のみ", found.Name())
	assert.Equal(t, "role=admin", found.URLParams())
}

func TestSearchConditionRepositoryDuplicateName(t *testing.T) {
	repo := NewSearchConditionRepository()
	mustCreateCondition(t, repo, "user", "管理者のみ")

	c, err := searchcondition.New("user", "管理者のみ", "role=admin&gender=male", "admin-2")
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrConflict))
}

func TestSearchConditionRepositoryFindAllByFormType(t *testing.T) {
	repo := NewSearchConditionRepository()
	mustCreateCondition(t, repo, "user", "条件A")
	mustCreateCondition(t, repo, "export", "条件B")

	userOnly, err := repo.FindAll(context.Background(), &searchcondition.Filter{FormType: "user"})
	require.NoError(t, err)
	require.Len(t, userOnly, 1)
	assert.Equal(t, "条件A", userOnly[0].Name())

	all, err := repo.FindAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSearchConditionRepositoryDelete(t *testing.T) {
	repo := NewSearchConditionRepository()
	created := mustCreateCondition(t, repo, "user", "条件A")

	deletedAt := time.Now()
	require.NoError(t, repo.Delete(context.Background(), created.ID(), "admin-1", deletedAt))

	active, err := repo.FindAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, active)

	found, err := repo.FindByID(context.Background(), created.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.True(t, found.IsDeleted())
	assert.Equal(t, "admin-1", *found.DeletedBy())

	// deleting twice counts as not found
	err = repo.Delete(context.Background(), created.ID(), "admin-1", time.Now())
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestSearchConditionRepositoryRename(t *testing.T) {
	repo := NewSearchConditionRepository()
	created := mustCreateCondition(t, repo, "user", "旧名")
	mustCreateCondition(t, repo, "user", "既存")

	require.NoError(t, created.ChangeName("新名", "admin-2"))
	updated, err := repo.Update(context.Background(), created)
	require.NoError(t, err)
	assert.Equal(t, "新名", updated.Name())
	assert.Equal(t, "admin-2", updated.UpdatedBy())

	require.NoError(t, created.ChangeName("既存", "admin-2"))
	_, err = repo.Update(context.Background(), created)
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrConflict))
}
