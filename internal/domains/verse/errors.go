package verse

import "errors"

// Repository-level errors
var (
	ErrVerseNotFound = errors.New("verse not found")
)

// Service-level (business logic) errors
var (
	// Conflict: manual numbers are unique per work, enforced before any
	// write occurs.
	ErrDuplicateManualNumber = errors.New("duplicate manual number")
)
