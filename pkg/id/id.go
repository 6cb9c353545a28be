// Package id generates request IDs and validates record IDs.
//
// Chatbots and users are identified by UUIDs assigned by the backend. The
// panel checks path and CLI arguments with Parse before building a backend
// URL, so a malformed id becomes a 404 instead of a confusing backend error.
// Request IDs are UUIDv7 so they sort by creation time in logs.
package id

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalid is returned for values that are not UUIDs.
var ErrInvalid = errors.New("id: invalid uuid")

// NewRequestID returns a time-ordered UUIDv7 string.
// It falls back to a random UUIDv4 if the clock source fails.
func NewRequestID() string {
	v, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v.String()
}

// Parse returns the canonical lowercase form of s.
func Parse(s string) (string, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	return u.String(), nil
}

// Valid reports whether s is a UUID.
func Valid(s string) bool {
	return uuid.Validate(s) == nil
}
