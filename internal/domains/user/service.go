package user

import "context"

// Service định nghĩa business logic layer contract cho authentication.
type Service interface {
	// Register tạo account mới. Email is stored lowercased; roles default
	// to author when the caller supplies none.
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)

	// Login verifies credentials and mints a session token.
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, string, error)

	// Logout revokes a session token. Unknown tokens are a no-op.
	Logout(ctx context.Context, token string) error

	// CurrentUser resolves a session token to its account, or
	// ErrNotAuthenticated.
	CurrentUser(ctx context.Context, token string) (*AuthResponse, error)

	// CSRFToken returns the anti-forgery token minted at startup.
	CSRFToken() string
}
