package domain

import "errors"

var (
	// ErrConflict is returned when a unique constraint (email/username) is violated
	ErrConflict = errors.New("already exists")

	// ErrNotFound is returned when a lookup matches no row or key
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized is returned when a supplied credential does not match
	ErrUnauthorized = errors.New("invalid credentials")

	// ErrNoSession is returned when a session-gated operation runs without a login
	ErrNoSession = errors.New("no active session")

	// ErrNotLoaded is returned when the catalog has not been populated yet
	ErrNotLoaded = errors.New("catalog not loaded")

	// ErrMalformedProduct marks catalog rows with no variants or no offers
	ErrMalformedProduct = errors.New("malformed product record")
)
