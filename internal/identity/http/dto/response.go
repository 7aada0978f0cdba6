package dto

import "github.com/allisson/vidshare/internal/identity/domain"

// UserResponse is the public view of an account.
type UserResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AuthResponse is returned by successful login and registration.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// SetRoleResponse is returned by the privileged role-assignment path.
type SetRoleResponse struct {
	OK    bool   `json:"ok"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// NewAuthResponse builds an AuthResponse from a token and user record.
func NewAuthResponse(token string, user *domain.User) AuthResponse {
	return AuthResponse{
		Token: token,
		User: UserResponse{
			Email: user.Email,
			Role:  user.EffectiveRole().String(),
		},
	}
}
