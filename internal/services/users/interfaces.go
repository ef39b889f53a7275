package users

import (
	"context"

	"github.com/hoaworks/reserve-api/internal/models"
)

// Repository defines the interface for user profile data access
type Repository interface {
	GetByAuthID(ctx context.Context, authID string) (*models.User, error)
	Upsert(ctx context.Context, user *models.User) error
}

// Service defines the interface for user profile business logic
type Service interface {
	// EnsureUser records or refreshes the local profile row for an
	// externally-authenticated identity, so author views can be joined
	// into annotation and reply responses.
	EnsureUser(ctx context.Context, authID, email, username, fullName string) (*models.User, error)

	GetByAuthID(ctx context.Context, authID string) (*models.User, error)
}
