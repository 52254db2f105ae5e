package server

import (
	"context"

	"github.com/google/uuid"

	"github.com/princejain-2004/RESUME-EXPERT/internal/db"
	"github.com/princejain-2004/RESUME-EXPERT/internal/types"
)

// UserStore is the account persistence the auth flow needs.
type UserStore interface {
	CreateUser(ctx context.Context, name, email, passwordHash, profileImageURL string) (uuid.UUID, error)
	GetUser(ctx context.Context, id uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
}

// ResumeStore is the resume persistence. Lookups scoped to a user return
// (nil, nil) when the resume is missing or owned by someone else.
type ResumeStore interface {
	CreateResume(ctx context.Context, userID uuid.UUID, d types.Draft) (*types.Resume, error)
	ListResumesByUser(ctx context.Context, userID uuid.UUID) ([]types.Resume, error)
	GetResumeForUser(ctx context.Context, id, userID uuid.UUID) (*types.Resume, error)
	UpdateResume(ctx context.Context, id, userID uuid.UUID, d types.Draft) (*types.Resume, error)
	DeleteResume(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

// Store is everything the server persists. *db.DB satisfies it.
type Store interface {
	UserStore
	ResumeStore
	Ping(ctx context.Context) error
}

var _ Store = (*db.DB)(nil)
