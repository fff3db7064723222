package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"corpus-backend/internal/domains/verse"
	"corpus-backend/internal/infrastructure/fsstore"
)

// fsRepository implement verse.Repository trên document store
type fsRepository struct {
	store *fsstore.Store
}

// NewFSRepository - Constructor
func NewFSRepository(store *fsstore.Store) verse.Repository {
	return &fsRepository{store: store}
}

func (r *fsRepository) List(ctx context.Context, workID string) ([]verse.Verse, error) {
	names, err := r.verseFiles(workID)
	if err != nil {
		return nil, err
	}

	verses := make([]verse.Verse, 0, len(names))
	for _, name := range names {
		var v verse.Verse
		path := r.store.VersePath(workID, strings.TrimSuffix(name, ".json"))
		if err := r.store.ReadJSON(path, &v); err != nil {
			if errors.Is(err, fsstore.ErrNotFound) {
				// Unparsable stray file in the verse area; skip it the same
				// way the id generator does.
				continue
			}
			return nil, err
		}
		verses = append(verses, v)
	}

	// Display order is the order field, never the filename.
	sort.SliceStable(verses, func(i, j int) bool {
		return verses[i].Order < verses[j].Order
	})
	return verses, nil
}

func (r *fsRepository) Load(_ context.Context, workID, verseID string) (*verse.Verse, error) {
	var v verse.Verse
	if err := r.store.ReadJSON(r.store.VersePath(workID, verseID), &v); err != nil {
		if errors.Is(err, fsstore.ErrNotFound) {
			return nil, verse.ErrVerseNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *fsRepository) Save(_ context.Context, v *verse.Verse) error {
	return r.store.WriteJSON(r.store.VersePath(v.WorkID, v.VerseID), v)
}

func (r *fsRepository) Exists(_ context.Context, workID, verseID string) bool {
	return r.store.Exists(r.store.VersePath(workID, verseID))
}

func (r *fsRepository) ExistingIDs(_ context.Context, workID string) ([]string, error) {
	names, err := r.verseFiles(workID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(names))
	for _, name := range names {
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	return ids, nil
}

func (r *fsRepository) LivePath(workID, verseID string) string {
	return r.store.VersePath(workID, verseID)
}

// verseFiles lists V*.json filenames in the work's verse sub-area.
// A missing sub-area means a work with no verses yet, not an error.
func (r *fsRepository) verseFiles(workID string) ([]string, error) {
	entries, err := os.ReadDir(r.store.VersesPath(workID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read verses of %s: %w", workID, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, "V") && strings.HasSuffix(name, ".json") {
			names = append(names, name)
		}
	}
	return names, nil
}
