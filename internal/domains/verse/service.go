package verse

import "context"

// Service định nghĩa business logic layer contract.
// Every mutating operation takes the acting user's email for the audit
// trail; the caller's auth boundary has already authorized the call.
type Service interface {
	// ListVerses returns one page of a work's verses in display order,
	// normalized to the work's expected language set.
	ListVerses(ctx context.Context, workID string, offset, limit int) (*ListResponse, error)

	// GetVerse loads and normalizes one verse.
	GetVerse(ctx context.Context, workID, verseID string) (*Verse, error)

	// CreateVerse mints the next verse id and persists a new record.
	// Returns ErrDuplicateManualNumber before any write on conflict.
	CreateVerse(ctx context.Context, workID string, req CreateRequest, actor string) (*Verse, error)

	// UpdateVerse applies a patch to a loaded snapshot and saves it whole.
	UpdateVerse(ctx context.Context, workID, verseID string, req UpdateRequest) (*Verse, error)

	// DeleteVerse soft-deletes via the tombstone manager. Idempotent.
	DeleteVerse(ctx context.Context, workID, verseID, actor string) error
}
