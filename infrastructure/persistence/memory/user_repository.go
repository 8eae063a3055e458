// Package memory backs the repositories with process-local maps. It is
// the default store for development and the fixture store for handler
// tests; filter semantics match the mysql implementation.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/hagio-gakuto/user-directory/domain/user"
	"github.com/hagio-gakuto/user-directory/pkg/idgen"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]user.Props
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]user.Props)}
}

func splitIDs(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

func matches(p user.Props, filter *user.Filter) bool {
	if filter == nil {
		return p.DeletedAt == nil
	}
	if !filter.IncludeDeleted && p.DeletedAt != nil {
		return false
	}
	if ids := splitIDs(filter.ID); len(ids) > 0 {
		found := false
		for _, id := range ids {
			if id == p.ID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if term := strings.TrimSpace(filter.Search); term != "" {
		needle := strings.ToLower(term)
		if !strings.Contains(strings.ToLower(p.Email), needle) &&
			!strings.Contains(strings.ToLower(p.FirstName), needle) &&
			!strings.Contains(strings.ToLower(p.LastName), needle) {
			return false
		}
	}
	if filter.Role != nil && p.Role != *filter.Role {
		return false
	}
	if filter.GenderSet {
		if filter.Gender == nil {
			if p.Gender != nil {
				return false
			}
		} else if p.Gender == nil || *p.Gender != *filter.Gender {
			return false
		}
	}
	return true
}

func (r *UserRepository) collect(filter *user.Filter) []user.Props {
	matched := make([]user.Props, 0, len(r.users))
	for _, p := range r.users {
		if matches(p, filter) {
			matched = append(matched, p)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})
	return matched
}

func (r *UserRepository) FindAll(ctx context.Context, filter *user.Filter) ([]*user.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := r.collect(filter)

	if filter.Paginated() {
		page := user.DefaultPage
		if filter.Page != nil && *filter.Page > 0 {
			page = *filter.Page
		}
		size := user.DefaultPageSize
		if filter.PageSize != nil && *filter.PageSize > 0 {
			size = *filter.PageSize
		}
		start := (page - 1) * size
		if start >= len(matched) {
			matched = nil
		} else {
			end := start + size
			if end > len(matched) {
				end = len(matched)
			}
			matched = matched[start:end]
		}
	}

	users := make([]*user.User, 0, len(matched))
	for _, p := range matched {
		u, err := user.Reconstruct(p)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *UserRepository) Count(ctx context.Context, filter *user.Filter) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, p := range r.users {
		if matches(p, filter) {
			count++
		}
	}
	return count, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return user.Reconstruct(p)
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	email := u.Email().Value()
	for _, existing := range r.users {
		if existing.Email == email {
			return nil, user.NewEmailAlreadyExistsError(email)
		}
	}

	now := time.Now()
	props := user.Props{
		ID:        idgen.New(),
		Email:     email,
		Role:      u.Role(),
		FirstName: u.Name().FirstName(),
		LastName:  u.Name().LastName(),
		Gender:    u.Gender(),
		CreatedAt: now,
		CreatedBy: u.CreatedBy(),
		UpdatedAt: now,
		UpdatedBy: u.UpdatedBy(),
	}
	r.users[props.ID] = props
	return user.Reconstruct(props)
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) (*user.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	p := u.Primitives()
	stored, ok := r.users[p.ID]
	if !ok {
		return nil, user.NewUserNotFoundError(p.ID)
	}
	for _, existing := range r.users {
		if existing.ID != p.ID && existing.Email == p.Email {
			return nil, user.NewEmailAlreadyExistsError(p.Email)
		}
	}

	stored.Email = p.Email
	stored.Role = p.Role
	stored.FirstName = p.FirstName
	stored.LastName = p.LastName
	stored.Gender = p.Gender
	stored.UpdatedAt = p.UpdatedAt
	stored.UpdatedBy = p.UpdatedBy
	stored.DeletedAt = p.DeletedAt
	stored.DeletedBy = p.DeletedBy
	r.users[p.ID] = stored
	return user.Reconstruct(stored)
}

var _ user.Repository = (*UserRepository)(nil)
