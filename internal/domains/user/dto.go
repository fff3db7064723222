package user

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ========================================
// AUTH DTOs
// ========================================

// RegisterRequest là request body khi POST /auth/register
type RegisterRequest struct {
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Roles    []string `json:"roles"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be at least 8 characters"),
		),
	)
}

// LoginRequest là request body khi POST /auth/login.
// OTP is accepted for forward compatibility but not verified yet.
type LoginRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	OTP      *string `json:"otp"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
		),
	)
}

// AuthResponse là public view của một user account
type AuthResponse struct {
	ID               string   `json:"id"`
	Email            string   `json:"email"`
	Roles            []string `json:"roles"`
	TwoFactorEnabled bool     `json:"twoFactorEnabled"`
}

// CSRFResponse carries the per-process anti-forgery token.
type CSRFResponse struct {
	CSRFToken string `json:"csrfToken"`
}
