package fsstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corpus-backend/internal/infrastructure/fsstore"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newStore(t *testing.T) *fsstore.Store {
	t.Helper()
	store, err := fsstore.New(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestWriteReadRoundTrip(t *testing.T) {
	store := newStore(t)
	path := filepath.Join(store.Root(), "nested", "deep", "rec.json")

	require.NoError(t, store.WriteJSON(path, record{ID: "r1", Name: "alpha"}))

	var got record
	require.NoError(t, store.ReadJSON(path, &got))
	assert.Equal(t, record{ID: "r1", Name: "alpha"}, got)

	// Pretty-printed with trailing newline.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"id\"")
	assert.Equal(t, byte('\n'), data[len(data)-1])
}

func TestReadMissingFileIsNotFound(t *testing.T) {
	store := newStore(t)

	var got record
	err := store.ReadJSON(filepath.Join(store.Root(), "absent.json"), &got)
	assert.ErrorIs(t, err, fsstore.ErrNotFound)
}

func TestReadGarbageFileIsNotFound(t *testing.T) {
	store := newStore(t)
	path := filepath.Join(store.Root(), "torn.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"id": "r1",`), 0o640))

	var got record
	err := store.ReadJSON(path, &got)
	assert.ErrorIs(t, err, fsstore.ErrNotFound)
}

func TestListWorkIDsRequiresWorkFile(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.WriteJSON(store.WorkPath("beta"), record{ID: "beta"}))
	require.NoError(t, store.WriteJSON(store.WorkPath("alpha"), record{ID: "alpha"}))
	// Directory without work.json must not count as a work.
	require.NoError(t, os.MkdirAll(filepath.Join(store.Root(), "stray"), 0o750))

	ids, err := store.ListWorkIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, ids)
}

func TestMoveRelocatesFile(t *testing.T) {
	store := newStore(t)
	src := filepath.Join(store.Root(), "w", "verses", "V0001.json")
	dst := filepath.Join(store.Root(), "w", "trash", "verses", "V0001.json")

	require.NoError(t, store.WriteJSON(src, record{ID: "V0001"}))
	require.NoError(t, store.Move(src, dst))

	assert.False(t, store.Exists(src))
	assert.True(t, store.Exists(dst))
}

func TestWriteLines(t *testing.T) {
	store := newStore(t)
	path := filepath.Join(store.Root(), "out.jsonl")

	require.NoError(t, store.WriteLines(path, [][]byte{
		[]byte(`{"a":1}`),
		[]byte(`{"b":2}`),
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\"a\":1}\n{\"b\":2}\n", string(data))
}
