package user

// Role is the authorization level of a directory user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole converts a raw string into a Role.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleUser, RoleAdmin:
		return Role(raw), nil
	}
	return "", NewInvalidRoleError(raw)
}

// Gender is an optional attribute; a nil *Gender means "not set".
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// ParseGender converts a raw string into a Gender.
func ParseGender(raw string) (Gender, error) {
	switch Gender(raw) {
	case GenderMale, GenderFemale, GenderOther:
		return Gender(raw), nil
	}
	return "", NewInvalidGenderError(raw)
}
