package domain

import "errors"

var (
	// ErrNotFound is returned when a lookup scoped to a tenant finds
	// zero rows.
	ErrNotFound = errors.New("requested record not found")

	// ErrValidation is returned when a required input field is missing
	// or malformed.
	ErrValidation = errors.New("invalid or missing input")

	// ErrDomain is returned when a numeric input falls outside a
	// formula's domain, e.g. a negative EOQ radicand.
	ErrDomain = errors.New("value outside formula domain")

	// ErrWrite wraps persistence-layer failures during a mutating
	// transaction. The transaction is rolled back entirely.
	ErrWrite = errors.New("persistence write failed")
)
