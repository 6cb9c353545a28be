package health

import "errors"

var (
	// ErrCheckFailed is returned by Run when one or more checks fail.
	ErrCheckFailed = errors.New("health: check failed")

	// ErrCheckTimeout is reported for checks that exceed the timeout.
	ErrCheckTimeout = errors.New("health: check timeout")
)
