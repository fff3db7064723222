package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corpus-backend/pkg/session"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)

	token, err := store.Create(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := store.Get(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)

	_, err := store.Get(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)

	token, err := store.Create(context.Background(), "user-1")
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), token))
	_, err = store.Get(context.Background(), token)
	assert.ErrorIs(t, err, session.ErrNotFound)

	// Deleting again is a no-op.
	assert.NoError(t, store.Delete(context.Background(), token))
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := session.NewMemoryStore(time.Millisecond)

	token, err := store.Create(context.Background(), "user-1")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	_, err = store.Get(context.Background(), token)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestTokensAreUnique(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := store.Create(context.Background(), "user-1")
		require.NoError(t, err)
		assert.False(t, seen[token])
		seen[token] = true
	}
}
