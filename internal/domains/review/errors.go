package review

import "errors"

// Service-level (business logic) errors
var (
	// Approval readiness gate (verses only)
	ErrCanonicalTextRequired = errors.New("canonical language text required")
	ErrOriginRequired        = errors.New("origin entry required")

	// Workflow
	ErrUnknownAction = errors.New("unknown review action")
)
