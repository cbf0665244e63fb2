package adapter

import "errors"

// Sentinel errors mapped from HTTP response statuses. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrUnauthorized is returned for 401 responses: wrong credentials or a
	// missing/invalid/expired token.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrEmailAlreadyExists is returned for 409 responses on signup.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNotFound is returned for 404 responses.
	ErrNotFound = errors.New("not found")

	// ErrBadRequest is returned for 400 responses.
	ErrBadRequest = errors.New("bad request")
)
