package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hagio-gakuto/user-directory/domain/searchcondition"
	"github.com/hagio-gakuto/user-directory/pkg/idgen"
)

type SearchConditionRepository struct {
	mu         sync.RWMutex
	conditions map[string]searchcondition.Props
}

func NewSearchConditionRepository() *SearchConditionRepository {
	return &SearchConditionRepository{conditions: make(map[string]searchcondition.Props)}
}

func conditionMatches(p searchcondition.Props, filter *searchcondition.Filter) bool {
	if filter == nil {
		return p.DeletedAt == nil
	}
	if !filter.IncludeDeleted && p.DeletedAt != nil {
		return false
	}
	if filter.FormType != "" && p.FormType != filter.FormType {
		return false
	}
	return true
}

func (r *SearchConditionRepository) FindAll(ctx context.Context, filter *searchcondition.Filter) ([]*searchcondition.SearchCondition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]searchcondition.Props, 0, len(r.conditions))
	for _, p := range r.conditions {
		if conditionMatches(p, filter) {
			matched = append(matched, p)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	conditions := make([]*searchcondition.SearchCondition, 0, len(matched))
	for _, p := range matched {
		conditions = append(conditions, searchcondition.Reconstruct(p))
	}
	return conditions, nil
}

func (r *SearchConditionRepository) FindByID(ctx context.Context, id string) (*searchcondition.SearchCondition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.conditions[id]
	if !ok {
		return nil, nil
	}
	return searchcondition.Reconstruct(p), nil
}

func (r *SearchConditionRepository) Create(ctx context.Context, c *searchcondition.SearchCondition) (*searchcondition.SearchCondition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.conditions {
		if existing.Name == c.Name() {
			return nil, searchcondition.NewNameAlreadyExistsError(c.Name())
		}
	}

	now := time.Now()
	props := searchcondition.Props{
		ID:        idgen.New(),
		FormType:  c.FormType(),
		Name:      c.Name(),
		URLParams: c.URLParams(),
		CreatedAt: now,
		CreatedBy: c.CreatedBy(),
		UpdatedAt: now,
		UpdatedBy: c.UpdatedBy(),
	}
	r.conditions[props.ID] = props
	return searchcondition.Reconstruct(props), nil
}

func (r *SearchConditionRepository) Update(ctx context.Context, c *searchcondition.SearchCondition) (*searchcondition.SearchCondition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	p := c.Primitives()
	stored, ok := r.conditions[p.ID]
	if !ok {
		return nil, searchcondition.NewNotFoundError(p.ID)
	}
	for _, existing := range r.conditions {
		if existing.ID != p.ID && existing.Name == p.Name {
			return nil, searchcondition.NewNameAlreadyExistsError(p.Name)
		}
	}

	stored.Name = p.Name
	stored.URLParams = p.URLParams
	stored.UpdatedAt = p.UpdatedAt
	stored.UpdatedBy = p.UpdatedBy
	stored.DeletedAt = p.DeletedAt
	stored.DeletedBy = p.DeletedBy
	r.conditions[p.ID] = stored
	return searchcondition.Reconstruct(stored), nil
}

func (r *SearchConditionRepository) Delete(ctx context.Context, id, deletedBy string, deletedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.conditions[id]
	if !ok || stored.DeletedAt != nil {
		return searchcondition.NewNotFoundError(id)
	}

	stored.DeletedAt = &deletedAt
	stored.DeletedBy = &deletedBy
	stored.UpdatedAt = deletedAt
	stored.UpdatedBy = deletedBy
	r.conditions[id] = stored
	return nil
}

var _ searchcondition.Repository = (*SearchConditionRepository)(nil)
