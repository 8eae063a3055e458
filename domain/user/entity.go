package user

import (
	"time"
)

// User is the aggregate root of the directory.
//
// Invariants:
//   - email is always trimmed, lowercased and contains "@"
//   - first and last name are non-empty after trimming
//   - id, createdAt and updatedAt are unset only between NewUser and the
//     first repository round-trip; accessing them earlier is a
//     programming error
//   - a soft-deleted user (deletedAt != nil) receives no further
//     mutations; use cases enforce this through their existence checks
//
// All fields are private; state changes go through the mutator methods,
// which stamp updatedBy/updatedAt on every call.
type User struct {
	id        string
	email     Email
	role      Role
	name      PersonName
	gender    *Gender
	createdAt time.Time
	createdBy string
	updatedAt time.Time
	updatedBy string
	deletedAt *time.Time
	deletedBy *string
}

// NewUser builds a not-yet-persisted user. The id and timestamps stay
// unset until the repository assigns them during Create. actorID is
// recorded as both creator and last updater.
func NewUser(email string, role Role, firstName, lastName string, gender *Gender, actorID string) (*User, error) {
	emailVO, err := NewEmail(email)
	if err != nil {
		return nil, err
	}
	nameVO, err := NewPersonName(firstName, lastName)
	if err != nil {
		return nil, err
	}

	return &User{
		email:     emailVO,
		role:      role,
		name:      nameVO,
		gender:    gender,
		createdBy: actorID,
		updatedBy: actorID,
	}, nil
}

// Props carries every persisted field for rehydration.
type Props struct {
	ID        string
	Email     string
	Role      Role
	FirstName string
	LastName  string
	Gender    *Gender
	CreatedAt time.Time
	CreatedBy string
	UpdatedAt time.Time
	UpdatedBy string
	DeletedAt *time.Time
	DeletedBy *string
}

// Reconstruct rehydrates a previously persisted user. Value objects are
// re-validated as a defense against corrupt rows; only repositories
// should call this.
func Reconstruct(props Props) (*User, error) {
	emailVO, err := NewEmail(props.Email)
	if err != nil {
		return nil, err
	}
	nameVO, err := NewPersonName(props.FirstName, props.LastName)
	if err != nil {
		return nil, err
	}

	return &User{
		id:        props.ID,
		email:     emailVO,
		role:      props.Role,
		name:      nameVO,
		gender:    props.Gender,
		createdAt: props.CreatedAt,
		createdBy: props.CreatedBy,
		updatedAt: props.UpdatedAt,
		updatedBy: props.UpdatedBy,
		deletedAt: props.DeletedAt,
		deletedBy: props.DeletedBy,
	}, nil
}

// ChangeName replaces both name parts.
func (u *User) ChangeName(firstName, lastName, actorID string) error {
	nameVO, err := NewPersonName(firstName, lastName)
	if err != nil {
		return err
	}
	u.name = nameVO
	u.touch(actorID)
	return nil
}

// ChangeEmail replaces the address.
func (u *User) ChangeEmail(email, actorID string) error {
	emailVO, err := NewEmail(email)
	if err != nil {
		return err
	}
	u.email = emailVO
	u.touch(actorID)
	return nil
}

// ChangeRole replaces the role.
func (u *User) ChangeRole(role Role, actorID string) {
	u.role = role
	u.touch(actorID)
}

// ChangeGender replaces the gender; nil clears it.
func (u *User) ChangeGender(gender *Gender, actorID string) {
	u.gender = gender
	u.touch(actorID)
}

// Delete marks the user logically removed. The timestamp comes from the
// caller so tests can control it.
func (u *User) Delete(actorID string, deletedAt time.Time) {
	u.deletedAt = &deletedAt
	u.deletedBy = &actorID
	u.touch(actorID)
}

func (u *User) touch(actorID string) {
	u.updatedAt = time.Now()
	u.updatedBy = actorID
}

// ID panics before the first persistence round-trip. Serializing an
// unsaved user is a bug in the calling use case, not a user error.
func (u *User) ID() string {
	if u.id == "" {
		panic("user: id is not set")
	}
	return u.id
}

// HasID reports whether the user has been persisted.
func (u *User) HasID() bool { return u.id != "" }

func (u *User) Email() Email      { return u.email }
func (u *User) Role() Role        { return u.role }
func (u *User) Name() PersonName  { return u.name }
func (u *User) Gender() *Gender   { return u.gender }
func (u *User) CreatedBy() string { return u.createdBy }
func (u *User) UpdatedBy() string { return u.updatedBy }

// CreatedAt panics before the first persistence round-trip.
func (u *User) CreatedAt() time.Time {
	if u.createdAt.IsZero() {
		panic("user: createdAt is not set")
	}
	return u.createdAt
}

// UpdatedAt panics before the first persistence round-trip.
func (u *User) UpdatedAt() time.Time {
	if u.updatedAt.IsZero() {
		panic("user: updatedAt is not set")
	}
	return u.updatedAt
}

func (u *User) DeletedAt() *time.Time { return u.deletedAt }
func (u *User) DeletedBy() *string    { return u.deletedBy }

// IsDeleted reports whether the user is logically removed.
func (u *User) IsDeleted() bool { return u.deletedAt != nil }

// Primitives is the flattened transport form of a persisted user.
type Primitives struct {
	ID        string
	Email     string
	Role      Role
	FirstName string
	LastName  string
	FullName  string
	Gender    *Gender
	CreatedAt time.Time
	CreatedBy string
	UpdatedAt time.Time
	UpdatedBy string
	DeletedAt *time.Time
	DeletedBy *string
}

// Primitives flattens the aggregate, reading through both value
// objects. Panics when the user has never been persisted.
func (u *User) Primitives() Primitives {
	return Primitives{
		ID:        u.ID(),
		Email:     u.email.Value(),
		Role:      u.role,
		FirstName: u.name.FirstName(),
		LastName:  u.name.LastName(),
		FullName:  u.name.FullName(),
		Gender:    u.gender,
		CreatedAt: u.CreatedAt(),
		CreatedBy: u.createdBy,
		UpdatedAt: u.UpdatedAt(),
		UpdatedBy: u.updatedBy,
		DeletedAt: u.deletedAt,
		DeletedBy: u.deletedBy,
	}
}
