package users

import (
	"context"
	"strings"

	"github.com/hoaworks/reserve-api/internal/models"
	apperrors "github.com/hoaworks/reserve-api/pkg/errors"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
}

// NewService creates a new user service
func NewService(repository Repository) Service {
	return &ServiceImpl{repository: repository}
}

// EnsureUser records or refreshes the caller's profile row. When no
// username claim is present the mailbox part of the email is used.
func (s *ServiceImpl) EnsureUser(ctx context.Context, authID, email, username, fullName string) (*models.User, error) {
	if authID == "" {
		return nil, apperrors.Unauthorized("authentication required")
	}

	if username == "" {
		if at := strings.Index(email, "@"); at > 0 {
			username = email[:at]
		} else {
			username = authID
		}
	}

	user := &models.User{
		AuthID:   authID,
		Username: username,
		FullName: fullName,
		Email:    email,
	}

	if err := s.repository.Upsert(ctx, user); err != nil {
		return nil, err
	}

	return s.repository.GetByAuthID(ctx, authID)
}

// GetByAuthID retrieves the profile row for an identity
func (s *ServiceImpl) GetByAuthID(ctx context.Context, authID string) (*models.User, error) {
	return s.repository.GetByAuthID(ctx, authID)
}
