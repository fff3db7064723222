package repository

import (
	"context"
	"errors"
	"fmt"

	"corpus-backend/internal/domains/work"
	"corpus-backend/internal/infrastructure/fsstore"
)

// fsRepository implement work.Repository trên document store
type fsRepository struct {
	store *fsstore.Store
}

// NewFSRepository - Constructor
func NewFSRepository(store *fsstore.Store) work.Repository {
	return &fsRepository{store: store}
}

func (r *fsRepository) ListIDs(_ context.Context) ([]string, error) {
	ids, err := r.store.ListWorkIDs()
	if err != nil {
		return nil, fmt.Errorf("list works: %w", err)
	}
	return ids, nil
}

func (r *fsRepository) Load(_ context.Context, workID string) (*work.Work, error) {
	var w work.Work
	if err := r.store.ReadJSON(r.store.WorkPath(workID), &w); err != nil {
		if errors.Is(err, fsstore.ErrNotFound) {
			return nil, work.ErrWorkNotFound
		}
		return nil, err
	}
	return &w, nil
}

func (r *fsRepository) Save(_ context.Context, w *work.Work) error {
	return r.store.WriteJSON(r.store.WorkPath(w.WorkID), w)
}

func (r *fsRepository) Exists(_ context.Context, workID string) bool {
	return r.store.Exists(r.store.WorkPath(workID))
}
