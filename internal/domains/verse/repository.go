package verse

import "context"

// Repository định nghĩa contract cho data access layer.
// Live records only; trashed verses are invisible to every method here.
type Repository interface {
	// List returns a work's live verses sorted by order ascending. Ids may
	// carry letter suffixes that do not sort numerically, so filenames are
	// never used for ordering.
	List(ctx context.Context, workID string) ([]Verse, error)

	// Load reads one verse record.
	// Returns ErrVerseNotFound when absent or unparsable.
	Load(ctx context.Context, workID, verseID string) (*Verse, error)

	// Save serializes the full record to its canonical location.
	Save(ctx context.Context, v *Verse) error

	// Exists reports whether the live record file is present.
	Exists(ctx context.Context, workID, verseID string) bool

	// ExistingIDs returns the file stems of all live verse files, matching
	// or not; the id generator filters garbage itself.
	ExistingIDs(ctx context.Context, workID string) ([]string, error)

	// LivePath returns the canonical file location of a verse record.
	// Used by the tombstone manager to relocate on delete.
	LivePath(workID, verseID string) string
}
