package user

// DefaultPage is the first page of any paginated listing.
const DefaultPage = 1

// DefaultPageSize applies when a caller paginates without naming a
// size. Configuration may override it at the service layer.
const DefaultPageSize = 20

// MaxPageSize caps a caller-supplied page size. Configuration may
// override it at the service layer.
const MaxPageSize = 100

// Filter describes which users a query should match. A nil *Filter
// means "all active users". The zero value of each field means
// "unconstrained"; Gender needs the extra GenderSet flag because an
// explicit nil gender ("only users without a gender") must be
// distinguishable from an absent constraint.
//
// Page and PageSize ride along in the same bag but are applied by the
// repository, and only when at least one of them is present; the
// export path passes neither and receives every matching row.
type Filter struct {
	// IncludeDeleted disables the default deletedAt-is-null constraint.
	IncludeDeleted bool

	// ID holds one or more ids separated by commas or whitespace.
	ID string

	// Search is a free-text term matched case-insensitively against
	// email, first name and last name.
	Search string

	Role *Role

	// Gender is consulted only when GenderSet is true. A nil Gender
	// with GenderSet matches users whose gender is unset.
	Gender    *Gender
	GenderSet bool

	Page     *int
	PageSize *int
}

// Paginated reports whether the caller asked for pagination.
func (f *Filter) Paginated() bool {
	return f != nil && (f.Page != nil || f.PageSize != nil)
}
