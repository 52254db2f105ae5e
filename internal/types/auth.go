package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// validate is shared by every request type; validator.Validate caches struct
// metadata and is safe for concurrent use.
var validate = validator.New()

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name            string `json:"name" validate:"required,min=1,max=120"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ProfileImageURL string `json:"profileImageUrl,omitempty" validate:"omitempty,url"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdatePasswordRequest is the body of PUT /auth/password.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,nefield=CurrentPassword"`
}

// User is the public view of an account; it never carries the password hash.
type User struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Validate checks the request against its struct tags.
func (r *RegisterRequest) Validate() error { return validate.Struct(r) }

// Validate checks the request against its struct tags.
func (r *LoginRequest) Validate() error { return validate.Struct(r) }

// Validate checks the request against its struct tags.
func (r *UpdatePasswordRequest) Validate() error { return validate.Struct(r) }

// Validate checks the request against its struct tags.
func (r *WizardRequest) Validate() error { return validate.Struct(r) }

// Validate checks the patch against its struct tags.
func (p *ResumePatch) Validate() error { return validate.Struct(p) }
