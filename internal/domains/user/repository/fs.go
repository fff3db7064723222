package repository

import (
	"context"
	"errors"
	"strings"
	"sync"

	"corpus-backend/internal/domains/user"
	"corpus-backend/internal/infrastructure/fsstore"
)

// fsRepository implement user.Repository trên registry file _users.json.
// A single mutex serializes read-modify-write of the whole registry; the
// account list is small and changes rarely.
type fsRepository struct {
	store *fsstore.Store
	mu    sync.Mutex
}

// NewFSRepository - Constructor
func NewFSRepository(store *fsstore.Store) user.Repository {
	return &fsRepository{store: store}
}

func (r *fsRepository) FindByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *fsRepository) FindByID(_ context.Context, id string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *fsRepository) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return err
	}
	users = append(users, *u)
	return r.store.WriteJSON(r.store.UsersPath(), users)
}

// load returns the registry; an absent file means an empty registry.
func (r *fsRepository) load() ([]user.User, error) {
	var users []user.User
	if err := r.store.ReadJSON(r.store.UsersPath(), &users); err != nil {
		if errors.Is(err, fsstore.ErrNotFound) {
			return []user.User{}, nil
		}
		return nil, err
	}
	return users, nil
}
