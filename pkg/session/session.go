package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrNotFound means the token is unknown or expired.
var ErrNotFound = errors.New("session not found")

// Store interface định nghĩa contract cho session layer.
// Cho phép swap implementation (in-memory, Redis).
type Store interface {
	// Create mints an opaque token bound to the user id.
	Create(ctx context.Context, userID string) (string, error)

	// Get resolves a token to its user id, or ErrNotFound.
	Get(ctx context.Context, token string) (string, error)

	// Delete revokes a token. Deleting an unknown token is a no-op.
	Delete(ctx context.Context, token string) error
}

// NewToken returns a fresh URL-safe random token.
func NewToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// ========================================
// In-memory implementation
// ========================================

type entry struct {
	userID    string
	expiresAt time.Time
}

// MemoryStore giữ sessions trong process memory với TTL.
// Expired entries are dropped lazily on lookup.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]entry
	ttl      time.Duration

	// now is swappable in tests; defaults to time.Now.
	now func() time.Time
}

// NewMemoryStore - Constructor
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (m *MemoryStore) Create(_ context.Context, userID string) (string, error) {
	token, err := NewToken()
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[token] = entry{userID: userID, expiresAt: m.now().Add(m.ttl)}
	return token, nil
}

func (m *MemoryStore) Get(_ context.Context, token string) (string, error) {
	m.mu.RLock()
	e, ok := m.sessions[token]
	m.mu.RUnlock()

	if !ok {
		return "", ErrNotFound
	}
	if m.now().After(e.expiresAt) {
		m.mu.Lock()
		delete(m.sessions, token)
		m.mu.Unlock()
		return "", ErrNotFound
	}
	return e.userID, nil
}

func (m *MemoryStore) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}
