// Package idgen generates record identifiers.
//
// UUIDv7 puts a millisecond timestamp in the most significant bits, so
// the textual form sorts by creation time. Repositories rely on this
// when they assign ids during the create round-trip.
package idgen

import "github.com/google/uuid"

// New returns a fresh, lexicographically sortable unique id.
func New() string {
	return uuid.Must(uuid.NewV7()).String()
}
