// Package common defines shared constants and sentinel errors used across
// the PackChann client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")

	// Local state errors.
	ErrNoStoredSession = errors.New("no stored session")
)
