package store

import "errors"

var (
	// ErrDuplicateUsername is returned when registering a username that
	// already exists.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrAuthFailed covers both unknown username and wrong password so the
	// two cases are indistinguishable to callers.
	ErrAuthFailed = errors.New("invalid credentials")

	// ErrNotFound covers both a missing note and a note owned by someone
	// else; callers cannot tell the two apart.
	ErrNotFound = errors.New("not found")
)
