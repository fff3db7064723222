package export

import "context"

// Service định nghĩa business logic layer contract cho export pipeline.
//
// Each operation rebuilds its artifact from live store state and returns
// the output path. Exports are idempotent and safe to re-run in full; there
// is no cross-file atomicity between the artifacts.
type Service interface {
	// Merge writes <work>/build/<id>.all.json and returns its path.
	Merge(ctx context.Context, workID string) (string, error)

	// Clean writes <work>/export/<id>.clean.json with editorial-internal
	// fields stripped. The stored originals are never mutated.
	Clean(ctx context.Context, workID string) (string, error)

	// Train writes <work>/export/<id>.train.jsonl, one JSON record per
	// (record, language-with-text) pair.
	Train(ctx context.Context, workID string) (string, error)
}
