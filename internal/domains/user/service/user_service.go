package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"corpus-backend/internal/domains/user"
	"corpus-backend/pkg/session"
)

// userService implement user.Service interface
type userService struct {
	repo     user.Repository // Data access layer
	sessions session.Store

	// csrfToken is minted once per process and handed to every client.
	csrfToken string
}

// NewUserService tạo service instance
// Inject repository và session store qua constructor (Dependency Injection)
func NewUserService(repo user.Repository, sessions session.Store) (user.Service, error) {
	csrfToken, err := session.NewToken()
	if err != nil {
		return nil, fmt.Errorf("generate csrf token: %w", err)
	}
	return &userService{
		repo:      repo,
		sessions:  sessions,
		csrfToken: csrfToken,
	}, nil
}

// ========================================
// AUTHENTICATION
// ========================================

func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.AuthResponse, error) {
	// 1. VALIDATE INPUT
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. BUSINESS RULE: email must be unique (case-insensitive)
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, user.ErrEmailAlreadyExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return nil, err
	}

	// 3. HASH PASSWORD
	// bcrypt cost = 12: balance giữa security và performance
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 4. CREATE USER ENTITY
	roles := req.Roles
	if len(roles) == 0 {
		roles = user.DefaultRoles()
	}
	newUser := &user.User{
		ID:               uuid.New().String(),
		Email:            strings.ToLower(req.Email),
		PasswordHash:     string(passwordHash),
		Roles:            roles,
		TwoFactorEnabled: false,
	}

	// 5. PERSIST TO REGISTRY
	if err := s.repo.Create(ctx, newUser); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	dto := newUser.ToDTO()
	return &dto, nil
}

func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.AuthResponse, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	// Không expose "email not found" vs "wrong password"
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", user.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", user.ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, u.ID)
	if err != nil {
		return nil, "", fmt.Errorf("create session: %w", err)
	}

	dto := u.ToDTO()
	return &dto, token, nil
}

func (s *userService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

func (s *userService) CurrentUser(ctx context.Context, token string) (*user.AuthResponse, error) {
	if token == "" {
		return nil, user.ErrNotAuthenticated
	}

	userID, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, user.ErrNotAuthenticated
		}
		return nil, err
	}

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, user.ErrNotAuthenticated
		}
		return nil, err
	}

	dto := u.ToDTO()
	return &dto, nil
}

func (s *userService) CSRFToken() string {
	return s.csrfToken
}
