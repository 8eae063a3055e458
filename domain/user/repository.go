package user

import "context"

// Repository persists the user aggregate.
//
// FindAll and Count must build their predicate from the same filter so
// pagination offsets never disagree with the reported total. FindByID
// returns (nil, nil) when no row exists; absence is a valid outcome
// and callers decide whether it is an error.
type Repository interface {
	// FindAll returns matching users ordered by creation time,
	// newest first. Skip/limit are applied only when the filter asks
	// for pagination.
	FindAll(ctx context.Context, filter *Filter) ([]*User, error)

	// Count returns the number of users matching the filter,
	// ignoring pagination fields.
	Count(ctx context.Context, filter *Filter) (int64, error)

	// FindByID returns the user regardless of soft-delete state, or
	// (nil, nil) when absent.
	FindByID(ctx context.Context, id string) (*User, error)

	// Create persists a new user, assigning its id and timestamps
	// during the round-trip. A duplicate email surfaces as a domain
	// conflict error.
	Create(ctx context.Context, u *User) (*User, error)

	// Update writes every mutable field including the soft-delete
	// pair. The user must have an id. Same conflict translation as
	// Create.
	Update(ctx context.Context, u *User) (*User, error)
}
