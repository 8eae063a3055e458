package mysql

import (
	"strings"
	"unicode"

	"gorm.io/gorm"

	"github.com/hagio-gakuto/user-directory/domain/user"
)

// SplitIDs tokenizes the raw id field of a filter. Commas and any
// whitespace both separate; empty tokens disappear.
func SplitIDs(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// UserScope translates a domain filter into a gorm scope. Pagination is
// not part of the scope so FindAll and Count share the exact same
// predicate.
func UserScope(filter *user.Filter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter == nil {
			return db.Where("deleted_at IS NULL")
		}

		if !filter.IncludeDeleted {
			db = db.Where("deleted_at IS NULL")
		}

		if ids := SplitIDs(filter.ID); len(ids) > 0 {
			db = db.Where("id IN ?", ids)
		}

		if term := strings.TrimSpace(filter.Search); term != "" {
			like := "%" + strings.ToLower(term) + "%"
			db = db.Where(
				"LOWER(email) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?",
				like, like, like,
			)
		}

		if filter.Role != nil {
			db = db.Where("role = ?", string(*filter.Role))
		}

		if filter.GenderSet {
			if filter.Gender == nil {
				db = db.Where("gender IS NULL")
			} else {
				db = db.Where("gender = ?", string(*filter.Gender))
			}
		}

		return db
	}
}
