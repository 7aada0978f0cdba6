// Package dto provides data transfer objects for identity HTTP request and
// response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/vidshare/internal/validation"
)

// RegisterRequest contains the parameters for account registration.
// Field-level validation happens in the use case so rejection always precedes
// any store access.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest contains the parameters for credential login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks that both credential fields are present.
func (r *LoginRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Password, validation.Required),
	)
}

// SetRoleRequest contains the parameters for the privileged role-assignment path.
type SetRoleRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}
