package commentary

import "context"

// Repository định nghĩa contract cho data access layer của commentary.
// Commentary files live either under a verse scope or the work scope, so
// id lookups walk every sub-scope of the work's commentary area.
type Repository interface {
	// ListAll returns every live commentary under the work, verse scopes
	// first in lexical order, then the work scope.
	ListAll(ctx context.Context, workID string) ([]Commentary, error)

	// ListForVerse returns the live commentary scoped to one verse.
	ListForVerse(ctx context.Context, workID, verseID string) ([]Commentary, error)

	// FindByID locates a commentary by id under any scope.
	FindByID(ctx context.Context, workID, commentaryID string) (*Commentary, error)

	// ExistingIDs returns the raw file stems in one scope. verseID "" means
	// the work scope. Used by the id generator.
	ExistingIDs(ctx context.Context, workID, verseID string) ([]string, error)

	// LivePath returns the absolute path of a commentary file under any
	// scope, or ErrCommentaryNotFound.
	LivePath(ctx context.Context, workID, commentaryID string) (string, error)

	Save(ctx context.Context, c *Commentary) error
}
