package common

import "errors"

var (
	// ErrUnavailable is returned when the account daemon cannot be reached.
	ErrUnavailable = errors.New("server unavailable")

	// ErrNotLoggedIn is returned when an operation needs a signed-in user
	// and there is none, or the caller is not that user.
	ErrNotLoggedIn = errors.New("user not logged in")

	// ErrUnsupportedDriver is returned for an unknown storage driver name.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")

	// ErrInvalidSnapshot marks a session snapshot that cannot be decoded
	// or verified.
	ErrInvalidSnapshot = errors.New("invalid session snapshot")
)
