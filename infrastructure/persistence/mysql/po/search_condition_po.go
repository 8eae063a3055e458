package po

import (
	"time"

	"github.com/hagio-gakuto/user-directory/domain/searchcondition"
)

// SearchConditionPO is the row shape of the search_conditions table.
// url_params is stored opaque; the backend never parses it.
type SearchConditionPO struct {
	ID        string     `gorm:"primaryKey;size:36"`
	FormType  string     `gorm:"size:50;not null;index"`
	Name      string     `gorm:"size:255;uniqueIndex;not null"`
	URLParams string     `gorm:"type:text;not null"`
	CreatedAt time.Time  `gorm:"not null"`
	CreatedBy string     `gorm:"size:64;not null"`
	UpdatedAt time.Time  `gorm:"not null"`
	UpdatedBy string     `gorm:"size:64;not null"`
	DeletedAt *time.Time `gorm:"index"`
	DeletedBy *string    `gorm:"size:64"`
}

func (SearchConditionPO) TableName() string {
	return "search_conditions"
}

// FromSearchConditionDomain maps a persisted aggregate onto its row.
func FromSearchConditionDomain(c *searchcondition.SearchCondition) *SearchConditionPO {
	p := c.Primitives()
	return &SearchConditionPO{
		ID:        p.ID,
		FormType:  p.FormType,
		Name:      p.Name,
		URLParams: p.URLParams,
		CreatedAt: p.CreatedAt,
		CreatedBy: p.CreatedBy,
		UpdatedAt: p.UpdatedAt,
		UpdatedBy: p.UpdatedBy,
		DeletedAt: p.DeletedAt,
		DeletedBy: p.DeletedBy,
	}
}

// ToDomain rehydrates the aggregate.
func (po *SearchConditionPO) ToDomain() *searchcondition.SearchCondition {
	return searchcondition.Reconstruct(searchcondition.Props{
		ID:        po.ID,
		FormType:  po.FormType,
		Name:      po.Name,
		URLParams: po.URLParams,
		CreatedAt: po.CreatedAt,
		CreatedBy: po.CreatedBy,
		UpdatedAt: po.UpdatedAt,
		UpdatedBy: po.UpdatedBy,
		DeletedAt: po.DeletedAt,
		DeletedBy: po.DeletedBy,
	})
}
