package services

import (
	"context"

	"github.com/mindnote-app/mindnote_backend/internal/core/domain"
	"github.com/mindnote-app/mindnote_backend/internal/dto"
)

// UserSvcFacade defines user account operations.
type UserSvcFacade interface {
	// CreateUser registers a new local account with a hashed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// AuthenticateUser verifies email and password credentials.
	// Returns apperrors.ErrUnauthorized on any mismatch.
	AuthenticateUser(ctx context.Context, email string, password string) (*domain.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// UpdateUser applies the allowed profile updates.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// DeleteUser soft-deletes the account and revokes refresh tokens.
	DeleteUser(ctx context.Context, userID string) error
}
