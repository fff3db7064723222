package user

import "errors"

// ========================================
// Repository-level errors
// ========================================

var (
	ErrUserNotFound = errors.New("user not found")
)

// ========================================
// Service-level (business logic) errors
// ========================================

var (
	ErrEmailAlreadyExists = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
)
