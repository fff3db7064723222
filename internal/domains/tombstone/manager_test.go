package tombstone_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corpus-backend/internal/domains/tombstone"
	"corpus-backend/internal/infrastructure/fsstore"
)

func TestDeleteMovesFileAndCommitsReceipt(t *testing.T) {
	store, err := fsstore.New(t.TempDir())
	require.NoError(t, err)
	mgr := tombstone.NewManager(store)

	livePath := store.VersePath("w", "V0001")
	require.NoError(t, store.WriteJSON(livePath, map[string]string{"verse_id": "V0001"}))

	require.NoError(t, mgr.Delete(context.Background(), "w", tombstone.KindVerses, "V0001", livePath, "editor@example.org"))

	assert.False(t, store.Exists(livePath))
	assert.True(t, store.Exists(store.TrashPath("w", "verses/V0001.json")))

	var ts tombstone.Tombstone
	require.NoError(t, store.ReadJSON(store.TombstonePath("w", "verses", "V0001"), &ts))
	assert.Equal(t, tombstone.StatusCommitted, ts.Status)
	assert.Equal(t, tombstone.KindVerses, ts.Kind)
	assert.Equal(t, "verses/V0001.json", ts.OriginalPath)
	assert.Equal(t, "trash/verses/V0001.json", ts.TrashPath)
	assert.Equal(t, "editor@example.org", ts.Actor)
	assert.False(t, ts.DeletedAt.IsZero())
}

func TestDeleteAbsentRecordIsNoOp(t *testing.T) {
	store, err := fsstore.New(t.TempDir())
	require.NoError(t, err)
	mgr := tombstone.NewManager(store)

	livePath := store.VersePath("w", "V0404")
	require.NoError(t, mgr.Delete(context.Background(), "w", tombstone.KindVerses, "V0404", livePath, "editor@example.org"))

	// No receipt for a record that never existed.
	assert.False(t, store.Exists(store.TombstonePath("w", "verses", "V0404")))
}

func TestDeletePreservesNestedRelativePath(t *testing.T) {
	store, err := fsstore.New(t.TempDir())
	require.NoError(t, err)
	mgr := tombstone.NewManager(store)

	livePath := store.CommentaryPath("w", "C-W-V0001-0001", "V0001")
	require.NoError(t, store.WriteJSON(livePath, map[string]string{"commentary_id": "C-W-V0001-0001"}))

	require.NoError(t, mgr.Delete(context.Background(), "w", tombstone.KindCommentary, "C-W-V0001-0001", livePath, "editor@example.org"))

	// Trash mirrors the live layout, scope directory included.
	assert.True(t, store.Exists(store.TrashPath("w", "commentary/V0001/C-W-V0001-0001.json")))
}
