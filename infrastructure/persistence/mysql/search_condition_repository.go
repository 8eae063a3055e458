package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/hagio-gakuto/user-directory/domain/searchcondition"
	"github.com/hagio-gakuto/user-directory/infrastructure/persistence/mysql/po"
	"github.com/hagio-gakuto/user-directory/pkg/idgen"
)

type SearchConditionRepository struct {
	db *gorm.DB
}

func NewSearchConditionRepository(db *gorm.DB) *SearchConditionRepository {
	return &SearchConditionRepository{db: db}
}

func conditionScope(filter *searchcondition.Filter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter == nil {
			return db.Where("deleted_at IS NULL")
		}
		if !filter.IncludeDeleted {
			db = db.Where("deleted_at IS NULL")
		}
		if filter.FormType != "" {
			db = db.Where("form_type = ?", filter.FormType)
		}
		return db
	}
}

func (r *SearchConditionRepository) FindAll(ctx context.Context, filter *searchcondition.Filter) ([]*searchcondition.SearchCondition, error) {
	var conditionPOs []po.SearchConditionPO
	err := r.db.WithContext(ctx).
		Scopes(conditionScope(filter)).
		Order("created_at DESC, id DESC").
		Find(&conditionPOs).Error
	if err != nil {
		return nil, err
	}

	conditions := make([]*searchcondition.SearchCondition, 0, len(conditionPOs))
	for i := range conditionPOs {
		conditions = append(conditions, conditionPOs[i].ToDomain())
	}
	return conditions, nil
}

func (r *SearchConditionRepository) FindByID(ctx context.Context, id string) (*searchcondition.SearchCondition, error) {
	var conditionPO po.SearchConditionPO
	result := r.db.WithContext(ctx).First(&conditionPO, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return conditionPO.ToDomain(), nil
}

// Create assigns the id and timestamps during the round-trip.
func (r *SearchConditionRepository) Create(ctx context.Context, c *searchcondition.SearchCondition) (*searchcondition.SearchCondition, error) {
	now := time.Now()
	conditionPO := &po.SearchConditionPO{
		ID:        idgen.New(),
		FormType:  c.FormType(),
		Name:      c.Name(),
		URLParams: c.URLParams(),
		CreatedAt: now,
		CreatedBy: c.CreatedBy(),
		UpdatedAt: now,
		UpdatedBy: c.UpdatedBy(),
	}

	if err := r.db.WithContext(ctx).Create(conditionPO).Error; err != nil {
		if isDuplicateKeyError(err) {
			return nil, searchcondition.NewNameAlreadyExistsError(conditionPO.Name)
		}
		return nil, err
	}
	return conditionPO.ToDomain(), nil
}

func (r *SearchConditionRepository) Update(ctx context.Context, c *searchcondition.SearchCondition) (*searchcondition.SearchCondition, error) {
	conditionPO := po.FromSearchConditionDomain(c)

	result := r.db.WithContext(ctx).
		Model(&po.SearchConditionPO{}).
		Where("id = ?", conditionPO.ID).
		Updates(map[string]interface{}{
			"name":       conditionPO.Name,
			"url_params": conditionPO.URLParams,
			"updated_at": conditionPO.UpdatedAt,
			"updated_by": conditionPO.UpdatedBy,
			"deleted_at": conditionPO.DeletedAt,
			"deleted_by": conditionPO.DeletedBy,
		})

	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return nil, searchcondition.NewNameAlreadyExistsError(conditionPO.Name)
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, searchcondition.NewNotFoundError(conditionPO.ID)
	}
	return c, nil
}

// Delete soft-deletes without loading the aggregate. Already deleted
// rows are left untouched and count as not found.
func (r *SearchConditionRepository) Delete(ctx context.Context, id, deletedBy string, deletedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&po.SearchConditionPO{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(map[string]interface{}{
			"deleted_at": deletedAt,
			"deleted_by": deletedBy,
			"updated_at": deletedAt,
			"updated_by": deletedBy,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return searchcondition.NewNotFoundError(id)
	}
	return nil
}

var _ searchcondition.Repository = (*SearchConditionRepository)(nil)
