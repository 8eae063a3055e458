package mysql

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/hagio-gakuto/user-directory/domain/user"
	"github.com/hagio-gakuto/user-directory/infrastructure/persistence/mysql/po"
	"github.com/hagio-gakuto/user-directory/pkg/idgen"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "Duplicate entry") ||
		strings.Contains(errStr, "1062")
}

func (r *UserRepository) FindAll(ctx context.Context, filter *user.Filter) ([]*user.User, error) {
	db := r.db.WithContext(ctx).
		Scopes(UserScope(filter)).
		Order("created_at DESC, id DESC")

	if filter.Paginated() {
		page := user.DefaultPage
		if filter.Page != nil && *filter.Page > 0 {
			page = *filter.Page
		}
		size := user.DefaultPageSize
		if filter.PageSize != nil && *filter.PageSize > 0 {
			size = *filter.PageSize
		}
		db = db.Offset((page - 1) * size).Limit(size)
	}

	var userPOs []po.UserPO
	if err := db.Find(&userPOs).Error; err != nil {
		return nil, err
	}

	users := make([]*user.User, 0, len(userPOs))
	for i := range userPOs {
		u, err := userPOs[i].ToDomain()
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *UserRepository) Count(ctx context.Context, filter *user.Filter) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&po.UserPO{}).
		Scopes(UserScope(filter)).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	var userPO po.UserPO
	result := r.db.WithContext(ctx).First(&userPO, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return userPO.ToDomain()
}

// Create assigns the id and timestamps during the round-trip; the
// entity it receives has neither.
func (r *UserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	now := time.Now()
	userPO := &po.UserPO{
		ID:        idgen.New(),
		Email:     u.Email().Value(),
		Role:      string(u.Role()),
		FirstName: u.Name().FirstName(),
		LastName:  u.Name().LastName(),
		Gender:    po.GenderToColumn(u.Gender()),
		CreatedAt: now,
		CreatedBy: u.CreatedBy(),
		UpdatedAt: now,
		UpdatedBy: u.UpdatedBy(),
	}

	if err := r.db.WithContext(ctx).Create(userPO).Error; err != nil {
		if isDuplicateKeyError(err) {
			return nil, user.NewEmailAlreadyExistsError(userPO.Email)
		}
		return nil, err
	}
	return userPO.ToDomain()
}

// Update writes every mutable field including the soft-delete pair, so
// a cleared gender really becomes NULL.
func (r *UserRepository) Update(ctx context.Context, u *user.User) (*user.User, error) {
	userPO := po.FromUserDomain(u)

	result := r.db.WithContext(ctx).
		Model(&po.UserPO{}).
		Where("id = ?", userPO.ID).
		Updates(map[string]interface{}{
			"email":      userPO.Email,
			"role":       userPO.Role,
			"first_name": userPO.FirstName,
			"last_name":  userPO.LastName,
			"gender":     userPO.Gender,
			"updated_at": userPO.UpdatedAt,
			"updated_by": userPO.UpdatedBy,
			"deleted_at": userPO.DeletedAt,
			"deleted_by": userPO.DeletedBy,
		})

	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return nil, user.NewEmailAlreadyExistsError(userPO.Email)
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, user.NewUserNotFoundError(userPO.ID)
	}
	return u, nil
}

var _ user.Repository = (*UserRepository)(nil)
