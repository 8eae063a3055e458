package searchcondition

import (
	"strings"
	"time"
)

// SearchCondition persists one reusable filter combination. urlParams
// is opaque to the backend; the console serializes and reapplies it.
//
// Lifecycle and audit fields mirror the user aggregate: created once,
// touched on every mutation, soft-deleted via the deletedAt/deletedBy
// pair. Name is unique among active conditions, enforced by the store.
type SearchCondition struct {
	id        string
	formType  string
	name      string
	urlParams string
	createdAt time.Time
	createdBy string
	updatedAt time.Time
	updatedBy string
	deletedAt *time.Time
	deletedBy *string
}

// New builds a not-yet-persisted condition. Id and timestamps are
// assigned by the repository during Create.
func New(formType, name, urlParams, actorID string) (*SearchCondition, error) {
	if strings.TrimSpace(formType) == "" {
		return nil, NewRequiredFormTypeError()
	}
	if strings.TrimSpace(name) == "" {
		return nil, NewRequiredNameError()
	}

	return &SearchCondition{
		formType:  formType,
		name:      name,
		urlParams: urlParams,
		createdBy: actorID,
		updatedBy: actorID,
	}, nil
}

// Props carries every persisted field for rehydration.
type Props struct {
	ID        string
	FormType  string
	Name      string
	URLParams string
	CreatedAt time.Time
	CreatedBy string
	UpdatedAt time.Time
	UpdatedBy string
	DeletedAt *time.Time
	DeletedBy *string
}

// Reconstruct rehydrates a previously persisted condition; only
// repositories should call this.
func Reconstruct(props Props) *SearchCondition {
	return &SearchCondition{
		id:        props.ID,
		formType:  props.FormType,
		name:      props.Name,
		urlParams: props.URLParams,
		createdAt: props.CreatedAt,
		createdBy: props.CreatedBy,
		updatedAt: props.UpdatedAt,
		updatedBy: props.UpdatedBy,
		deletedAt: props.DeletedAt,
		deletedBy: props.DeletedBy,
	}
}

// ChangeName renames the condition. Renaming is the only update the
// console offers.
func (s *SearchCondition) ChangeName(name, actorID string) error {
	if strings.TrimSpace(name) == "" {
		return NewRequiredNameError()
	}
	s.name = name
	s.touch(actorID)
	return nil
}

// Delete marks the condition logically removed. The timestamp comes
// from the caller so tests can control it.
func (s *SearchCondition) Delete(actorID string, deletedAt time.Time) {
	s.deletedAt = &deletedAt
	s.deletedBy = &actorID
	s.touch(actorID)
}

func (s *SearchCondition) touch(actorID string) {
	s.updatedAt = time.Now()
	s.updatedBy = actorID
}

// ID panics before the first persistence round-trip.
func (s *SearchCondition) ID() string {
	if s.id == "" {
		panic("searchcondition: id is not set")
	}
	return s.id
}

// HasID reports whether the condition has been persisted.
func (s *SearchCondition) HasID() bool { return s.id != "" }

func (s *SearchCondition) FormType() string  { return s.formType }
func (s *SearchCondition) Name() string      { return s.name }
func (s *SearchCondition) URLParams() string { return s.urlParams }
func (s *SearchCondition) CreatedBy() string { return s.createdBy }
func (s *SearchCondition) UpdatedBy() string { return s.updatedBy }

// CreatedAt panics before the first persistence round-trip.
func (s *SearchCondition) CreatedAt() time.Time {
	if s.createdAt.IsZero() {
		panic("searchcondition: createdAt is not set")
	}
	return s.createdAt
}

// UpdatedAt panics before the first persistence round-trip.
func (s *SearchCondition) UpdatedAt() time.Time {
	if s.updatedAt.IsZero() {
		panic("searchcondition: updatedAt is not set")
	}
	return s.updatedAt
}

func (s *SearchCondition) DeletedAt() *time.Time { return s.deletedAt }
func (s *SearchCondition) DeletedBy() *string    { return s.deletedBy }

// IsDeleted reports whether the condition is logically removed.
func (s *SearchCondition) IsDeleted() bool { return s.deletedAt != nil }

// Primitives is the flattened transport form of a persisted condition.
type Primitives struct {
	ID        string
	FormType  string
	Name      string
	URLParams string
	CreatedAt time.Time
	CreatedBy string
	UpdatedAt time.Time
	UpdatedBy string
	DeletedAt *time.Time
	DeletedBy *string
}

// Primitives flattens the aggregate. Panics when never persisted.
func (s *SearchCondition) Primitives() Primitives {
	return Primitives{
		ID:        s.ID(),
		FormType:  s.formType,
		Name:      s.name,
		URLParams: s.urlParams,
		CreatedAt: s.CreatedAt(),
		CreatedBy: s.createdBy,
		UpdatedAt: s.UpdatedAt(),
		UpdatedBy: s.updatedBy,
		DeletedAt: s.deletedAt,
		DeletedBy: s.deletedBy,
	}
}
