package tombstone

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"corpus-backend/internal/infrastructure/fsstore"
)

// Manager thực hiện destructive-soft delete: relocate the live file into
// the work's trash area (preserving its relative path) and record a receipt.
type Manager interface {
	// Delete soft-deletes one record. Idempotent: a record with no live
	// file is treated as already deleted: no error, no second tombstone.
	Delete(ctx context.Context, workID string, kind Kind, id, livePath, actor string) error
}

type manager struct {
	store *fsstore.Store

	// now is swappable in tests; defaults to time.Now.
	now func() time.Time
}

// NewManager - Constructor
func NewManager(store *fsstore.Store) Manager {
	return &manager{store: store, now: time.Now}
}

// Delete sequence: write tombstone as pending → move file → mark committed.
// The write-ahead receipt means a crash between steps is detectable: a
// pending tombstone with the live file intact is retryable, a pending one
// with the file already moved shows exactly where the record went.
func (m *manager) Delete(_ context.Context, workID string, kind Kind, id, livePath, actor string) error {
	if !m.store.Exists(livePath) {
		return nil
	}

	rel, err := m.store.WorkRel(workID, livePath)
	if err != nil {
		return fmt.Errorf("resolve relative path of %s: %w", livePath, err)
	}
	rel = filepath.ToSlash(rel)

	ts := Tombstone{
		Kind:         kind,
		ID:           id,
		WorkID:       workID,
		DeletedAt:    m.now().UTC(),
		Actor:        actor,
		OriginalPath: rel,
		TrashPath:    fsstore.TrashDir + "/" + rel,
		Status:       StatusPending,
	}

	receiptPath := m.store.TombstonePath(workID, string(kind), id)
	if err := m.store.WriteJSON(receiptPath, &ts); err != nil {
		return fmt.Errorf("write tombstone: %w", err)
	}

	if err := m.store.Move(livePath, m.store.TrashPath(workID, filepath.FromSlash(rel))); err != nil {
		return fmt.Errorf("move to trash: %w", err)
	}

	ts.Status = StatusCommitted
	if err := m.store.WriteJSON(receiptPath, &ts); err != nil {
		return fmt.Errorf("commit tombstone: %w", err)
	}
	return nil
}
