package work

import "errors"

// Repository-level errors
var (
	ErrWorkNotFound = errors.New("work not found")
)

// Service-level (business logic) errors
var (
	ErrMismatchedWorkID = errors.New("payload work_id does not match path work_id")
)
