package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/hagio-gakuto/user-directory/domain/shared"
	"github.com/hagio-gakuto/user-directory/domain/user"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

var userColumns = []string{
	"id", "email", "role", "first_name", "last_name", "gender",
	"created_at", "created_by", "updated_at", "updated_by",
	"deleted_at", "deleted_by",
}

func userRow(id, email string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(userColumns).
		AddRow(id, email, "user", "太郎", "山田", nil, now, "system", now, "system", nil, nil)
}

func TestUserRepositoryFindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `users` WHERE id = ").
		WillReturnRows(userRow("u-1", "taro@example.com"))

	u, err := repo.FindByID(context.Background(), "u-1")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "u-1", u.ID())
	assert.Equal(t, "taro@example.com", u.Email().Value())
	assert.Equal(t, "山田 太郎", u.Name().FullName())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryFindByIDAbsentReturnsNilNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(sqlmock.NewRows(userColumns))

	u, err := repo.FindByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserRepositoryCreateAssignsIdentity(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(0, 1))

	newUser, err := user.NewUser("hanako@example.com", user.RoleAdmin, "花子", "佐藤", nil, "system")
	require.NoError(t, err)
	require.False(t, newUser.HasID())

	created, err := repo.Create(context.Background(), newUser)
	require.NoError(t, err)
	assert.True(t, created.HasID())
	assert.False(t, created.CreatedAt().IsZero())
	assert.Equal(t, created.CreatedAt(), created.UpdatedAt())
	assert.Equal(t, "hanako@example.com", created.Email().Value())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryCreateDuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec("INSERT INTO `users`").
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'taro@example.com' for key 'users.email'"))

	newUser, err := user.NewUser("taro@example.com", user.RoleUser, "太郎", "山田", nil, "system")
	require.NoError(t, err)

	_, err = repo.Create(context.Background(), newUser)
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrConflict))
	assert.Contains(t, err.Error(), "既に登録されています")
}

func TestUserRepositoryCount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(7))

	count, err := repo.Count(context.Background(), &user.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

func TestUserRepositoryFindAllPaginates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `users` WHERE deleted_at IS NULL ORDER BY created_at DESC, id DESC LIMIT (.+)").
		WillReturnRows(userRow("u-2", "taro@example.com"))

	page, size := 2, 1
	users, err := repo.FindAll(context.Background(), &user.Filter{Page: &page, PageSize: &size})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "u-2", users[0].ID())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryFindAllWithoutPaginationHasNoLimit(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE deleted_at IS NULL ORDER BY created_at DESC, id DESC$").
		WillReturnRows(sqlmock.NewRows(userColumns))

	users, err := repo.FindAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(userRow("u-1", "taro@example.com"))
	mock.ExpectExec("UPDATE `users` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	u, err := repo.FindByID(context.Background(), "u-1")
	require.NoError(t, err)
	require.NoError(t, u.ChangeEmail("jiro@example.com", "admin-1"))

	updated, err := repo.Update(context.Background(), u)
	require.NoError(t, err)
	assert.Equal(t, "jiro@example.com", updated.Email().Value())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryUpdateMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(userRow("u-9", "kyu@example.com"))
	mock.ExpectExec("UPDATE `users` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	u, err := repo.FindByID(context.Background(), "u-9")
	require.NoError(t, err)

	_, err = repo.Update(context.Background(), u)
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}
