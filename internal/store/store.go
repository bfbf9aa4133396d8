package store

import "errors"

var (
	// ErrNotFound is returned by lookups when no user matches.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicate is returned when a write would violate the uniqueness of
	// username or email.
	ErrDuplicate = errors.New("username or email already exists")
)

// ProfileUpdate carries the mutable profile fields. Empty fields are left
// untouched on the stored record.
type ProfileUpdate struct {
	Username string
	Email    string
}
