package work

import "context"

// Service định nghĩa business logic layer contract
type Service interface {
	// ListWorks returns the summary projection of every work.
	ListWorks(ctx context.Context) ([]Summary, error)

	// GetWork loads one full work record.
	GetWork(ctx context.Context, workID string) (*Work, error)

	// ReplaceWork overwrites a work record wholesale.
	// Returns ErrMismatchedWorkID when the payload id differs from workID.
	ReplaceWork(ctx context.Context, workID string, req ReplaceRequest) (*Work, error)
}
