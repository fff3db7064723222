package commentary

import "context"

// Service định nghĩa business logic layer contract.
type Service interface {
	// ListForVerse returns the live commentary attached to one verse.
	// Fails with verse.ErrVerseNotFound when the verse itself is absent.
	ListForVerse(ctx context.Context, workID, verseID string) ([]Commentary, error)

	// GetCommentary locates one commentary by id under any scope.
	GetCommentary(ctx context.Context, workID, commentaryID string) (*Commentary, error)

	// CreateCommentary mints the next id in the (work, verse) scope and
	// persists a new record targeting that verse.
	CreateCommentary(ctx context.Context, workID, verseID string, req CreateRequest) (*Commentary, error)

	// UpdateCommentary applies a patch to a loaded snapshot and saves it
	// whole, preserving the record's scope.
	UpdateCommentary(ctx context.Context, workID, commentaryID string, req UpdateRequest) (*Commentary, error)

	// DeleteCommentary soft-deletes via the tombstone manager. Idempotent.
	DeleteCommentary(ctx context.Context, workID, commentaryID, actor string) error
}
