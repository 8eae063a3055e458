package po

import (
	"time"

	"github.com/hagio-gakuto/user-directory/domain/user"
)

// UserPO is the row shape of the users table. Soft deletion is the
// nullable deleted_at/deleted_by pair; rows are never removed.
type UserPO struct {
	ID        string     `gorm:"primaryKey;size:36"`
	Email     string     `gorm:"size:255;uniqueIndex;not null"`
	Role      string     `gorm:"size:20;not null"`
	FirstName string     `gorm:"size:100;not null"`
	LastName  string     `gorm:"size:100;not null"`
	Gender    *string    `gorm:"size:20"`
	CreatedAt time.Time  `gorm:"not null"`
	CreatedBy string     `gorm:"size:64;not null"`
	UpdatedAt time.Time  `gorm:"not null"`
	UpdatedBy string     `gorm:"size:64;not null"`
	DeletedAt *time.Time `gorm:"index"`
	DeletedBy *string    `gorm:"size:64"`
}

func (UserPO) TableName() string {
	return "users"
}

// FromUserDomain maps a persisted aggregate onto its row. The user must
// already have an id and timestamps.
func FromUserDomain(u *user.User) *UserPO {
	p := u.Primitives()
	return &UserPO{
		ID:        p.ID,
		Email:     p.Email,
		Role:      string(p.Role),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Gender:    GenderToColumn(p.Gender),
		CreatedAt: p.CreatedAt,
		CreatedBy: p.CreatedBy,
		UpdatedAt: p.UpdatedAt,
		UpdatedBy: p.UpdatedBy,
		DeletedAt: p.DeletedAt,
		DeletedBy: p.DeletedBy,
	}
}

// ToDomain rehydrates the aggregate, re-validating value objects.
func (po *UserPO) ToDomain() (*user.User, error) {
	return user.Reconstruct(user.Props{
		ID:        po.ID,
		Email:     po.Email,
		Role:      user.Role(po.Role),
		FirstName: po.FirstName,
		LastName:  po.LastName,
		Gender:    GenderFromColumn(po.Gender),
		CreatedAt: po.CreatedAt,
		CreatedBy: po.CreatedBy,
		UpdatedAt: po.UpdatedAt,
		UpdatedBy: po.UpdatedBy,
		DeletedAt: po.DeletedAt,
		DeletedBy: po.DeletedBy,
	})
}

// GenderToColumn converts the optional gender to its nullable column.
func GenderToColumn(g *user.Gender) *string {
	if g == nil {
		return nil
	}
	s := string(*g)
	return &s
}

// GenderFromColumn converts the nullable column back to the domain.
func GenderFromColumn(s *string) *user.Gender {
	if s == nil {
		return nil
	}
	g := user.Gender(*s)
	return &g
}
