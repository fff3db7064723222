package work

import "context"

// Repository định nghĩa contract cho data access layer.
// Backed by the document store, one work.json per work directory.
type Repository interface {
	// ListIDs returns all work ids present in the store, sorted.
	ListIDs(ctx context.Context) ([]string, error)

	// Load reads one work record.
	// Returns ErrWorkNotFound when work.json is absent or unparsable.
	Load(ctx context.Context, workID string) (*Work, error)

	// Save serializes the full record to its canonical location.
	// Full overwrite; there is no field-level patching at this layer.
	Save(ctx context.Context, w *Work) error

	// Exists reports whether the work record is present.
	Exists(ctx context.Context, workID string) bool
}
