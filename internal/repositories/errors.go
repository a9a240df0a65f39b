package repositories

import "errors"

var (
	// ErrNotFound is returned when a looked-up row does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateUsername is returned when an insert hits the unique
	// constraint on users.username.
	ErrDuplicateUsername = errors.New("username already taken")
)
