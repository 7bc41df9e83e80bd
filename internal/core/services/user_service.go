package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mindnote-app/mindnote_backend/internal/apperrors"
	"github.com/mindnote-app/mindnote_backend/internal/core/domain"
	portsrepo "github.com/mindnote-app/mindnote_backend/internal/core/ports/repositories"
	"github.com/mindnote-app/mindnote_backend/internal/dto"
	"github.com/mindnote-app/mindnote_backend/internal/utils"
)

// UserService implements account management for local (email/password)
// users.
type UserService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade

	now func() time.Time
}

// UserServiceOption configures the user service.
type UserServiceOption func(*UserService)

// WithUserClock overrides the clock, for tests.
func WithUserClock(now func() time.Time) UserServiceOption {
	return func(s *UserService) { s.now = now }
}

// NewUserService creates a new user service instance.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, opts ...UserServiceOption) *UserService {
	svc := &UserService{
		userRepo: userRepo,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *UserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "failed to check for existing user", "email", email)
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered: %w", apperrors.ErrDuplicate)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        email,
		DisplayName:  strings.TrimSpace(req.DisplayName),
		PasswordHash: &hash,
		AuthProvider: domain.ProviderLocal,
	}
	user.CreatedAt = now
	user.LastUpdatedAt = now

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "failed to save user", "email", email)
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.LogInfo(ctx, "user registered", "userID", user.UserID)
	return &user, nil
}

func (s *UserService) AuthenticateUser(ctx context.Context, email string, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "failed to look up user", "email", email)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.DeletedAt != nil || user.PasswordHash == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if !utils.CheckPasswordHash(password, *user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.DeletedAt != nil {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		user.DisplayName = strings.TrimSpace(*req.DisplayName)
	}
	user.LastUpdatedAt = s.now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "failed to update user", "userID", userID)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	if _, err := s.GetUserByID(ctx, userID); err != nil {
		return err
	}

	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		s.LogError(ctx, err, "failed to clear refresh token on delete", "userID", userID)
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}
	if err := s.userRepo.MarkUserDeleted(ctx, userID, s.now()); err != nil {
		s.LogError(ctx, err, "failed to mark user deleted", "userID", userID)
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.LogInfo(ctx, "user deleted", "userID", userID)
	return nil
}
