package searchcondition

import (
	"context"
	"time"
)

// Filter narrows a listing. The zero value matches all active
// conditions.
type Filter struct {
	// FormType restricts to conditions saved for one admin form.
	FormType string

	// IncludeDeleted disables the default deletedAt-is-null constraint.
	IncludeDeleted bool
}

// Repository persists the search-condition aggregate. Listing is never
// paginated; the console shows all of an operator's saved conditions
// at once.
type Repository interface {
	// FindAll returns matching conditions ordered by creation time,
	// newest first.
	FindAll(ctx context.Context, filter *Filter) ([]*SearchCondition, error)

	// FindByID returns the condition regardless of soft-delete state,
	// or (nil, nil) when absent.
	FindByID(ctx context.Context, id string) (*SearchCondition, error)

	// Create persists a new condition, assigning its id and
	// timestamps during the round-trip. A duplicate name surfaces as
	// a domain conflict error.
	Create(ctx context.Context, c *SearchCondition) (*SearchCondition, error)

	// Update writes every mutable field including the soft-delete
	// pair. The condition must have an id. Same conflict translation
	// as Create.
	Update(ctx context.Context, c *SearchCondition) (*SearchCondition, error)

	// Delete soft-deletes by id without loading the aggregate; the
	// row keeps existing with the deletion pair set.
	Delete(ctx context.Context, id, deletedBy string, deletedAt time.Time) error
}
