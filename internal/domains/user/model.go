package user

// User là editorial account trong registry file _users.json.
// The registry is a flat JSON array; passwords are stored bcrypt-hashed.
// twoFactorEnabled keeps its camelCase key for registry compatibility.
type User struct {
	ID               string   `json:"id"`
	Email            string   `json:"email"`
	PasswordHash     string   `json:"password_hash"`
	Roles            []string `json:"roles"`
	TwoFactorEnabled bool     `json:"twoFactorEnabled"`
}

// DefaultRoles for a fresh registration.
func DefaultRoles() []string {
	return []string{"author"}
}

// ToDTO strips sensitive fields for responses.
func (u *User) ToDTO() AuthResponse {
	return AuthResponse{
		ID:               u.ID,
		Email:            u.Email,
		Roles:            u.Roles,
		TwoFactorEnabled: u.TwoFactorEnabled,
	}
}
