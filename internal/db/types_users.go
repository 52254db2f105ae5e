package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/princejain-2004/RESUME-EXPERT/internal/types"
)

// User represents a user account row
type User struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	ProfileImageURL string    `json:"profile_image_url,omitempty"`
	PasswordHash    string    `json:"-" db:"password_hash"` // Never serialize to JSON
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Public returns the client-facing view of the account.
func (u *User) Public() *types.User {
	if u == nil {
		return nil
	}
	return &types.User{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		ProfileImageURL: u.ProfileImageURL,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}
