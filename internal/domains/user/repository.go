package user

import "context"

// Repository định nghĩa contract cho data access layer của user registry.
// The registry is one flat file, so writes serialize the whole list.
type Repository interface {
	// FindByEmail matches case-insensitively, or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByID returns the account, or ErrUserNotFound.
	FindByID(ctx context.Context, id string) (*User, error)

	// Create appends a new account to the registry.
	Create(ctx context.Context, u *User) error
}
