package user

import "strings"

// Email is an immutable value object wrapping a normalized address.
// Construction trims, requires an "@" and lowercases, so any Email in
// the system is safe to compare and persist as-is.
type Email struct {
	value string
}

// NewEmail validates and normalizes a raw address.
func NewEmail(raw string) (Email, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Email{}, NewRequiredEmailError()
	}
	if !strings.Contains(trimmed, "@") {
		return Email{}, NewInvalidEmailFormatError(trimmed)
	}
	return Email{value: strings.ToLower(trimmed)}, nil
}

// Value returns the normalized address.
func (e Email) Value() string { return e.value }

// Equals compares by normalized value.
func (e Email) Equals(other Email) bool { return e.value == other.value }

func (e Email) String() string { return e.value }

// PersonName pairs a given name and a family name. The full-name form
// follows the family-name-first convention.
type PersonName struct {
	firstName string
	lastName  string
}

// NewPersonName validates that both parts are non-empty after trimming.
func NewPersonName(firstName, lastName string) (PersonName, error) {
	trimmedFirst := strings.TrimSpace(firstName)
	trimmedLast := strings.TrimSpace(lastName)
	if trimmedFirst == "" || trimmedLast == "" {
		return PersonName{}, NewRequiredNameError()
	}
	return PersonName{firstName: trimmedFirst, lastName: trimmedLast}, nil
}

// FirstName returns the given name.
func (n PersonName) FirstName() string { return n.firstName }

// LastName returns the family name.
func (n PersonName) LastName() string { return n.lastName }

// FullName renders "family given".
func (n PersonName) FullName() string { return n.lastName + " " + n.firstName }
