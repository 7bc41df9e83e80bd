package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/api/idtoken"

	"github.com/mindnote-app/mindnote_backend/internal/apperrors"
	"github.com/mindnote-app/mindnote_backend/internal/core/domain"
	portsrepo "github.com/mindnote-app/mindnote_backend/internal/core/ports/repositories"
	portssvc "github.com/mindnote-app/mindnote_backend/internal/core/ports/services"
	"github.com/mindnote-app/mindnote_backend/internal/platform/config"
	"github.com/mindnote-app/mindnote_backend/internal/utils"
)

// TokenService issues access tokens and manages rotating refresh
// tokens. Refresh tokens are opaque "{userID}.{random}" values; only a
// hash is stored, and each successful refresh rotates the token.
type TokenService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	cfg      *config.Config

	now func() time.Time
}

// TokenServiceOption configures the token service.
type TokenServiceOption func(*TokenService)

// WithTokenClock overrides the clock, for tests.
func WithTokenClock(now func() time.Time) TokenServiceOption {
	return func(s *TokenService) { s.now = now }
}

// NewTokenService creates a new token service instance.
func NewTokenService(userRepo portsrepo.UserRepositoryFacade, cfg *config.Config, opts ...TokenServiceOption) *TokenService {
	svc := &TokenService{
		userRepo: userRepo,
		cfg:      cfg,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *TokenService) GenerateTokenPair(ctx context.Context, userID string) (*portssvc.TokenPair, error) {
	accessToken, err := utils.GenerateJWT(userID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "failed to generate access token", "userID", userID)
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	random, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		s.LogError(ctx, err, "failed to generate refresh token")
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	refreshToken := userID + "." + random

	now := s.now()
	refreshExpiry := now.Add(s.cfg.RefreshTokenExpiryDuration)
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, utils.HashRefreshToken(refreshToken), refreshExpiry); err != nil {
		s.LogError(ctx, err, "failed to store refresh token", "userID", userID)
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &portssvc.TokenPair{
		AccessToken:        accessToken,
		AccessTokenExpiry:  now.Add(s.cfg.JWTExpiryDuration),
		RefreshToken:       refreshToken,
		RefreshTokenExpiry: refreshExpiry,
	}, nil
}

func (s *TokenService) RefreshAccessToken(ctx context.Context, refreshToken string) (*portssvc.TokenPair, error) {
	userID, _, found := strings.Cut(refreshToken, ".")
	if !found || userID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "failed to look up user for refresh", "userID", userID)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.DeletedAt != nil || user.RefreshTokenHash == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if !utils.CompareRefreshTokenHash(refreshToken, user.RefreshTokenHash) {
		return nil, apperrors.ErrUnauthorized
	}
	if user.RefreshTokenExpiryTime == nil || s.now().After(*user.RefreshTokenExpiryTime) {
		return nil, apperrors.ErrRefreshTokenExpired
	}

	return s.GenerateTokenPair(ctx, userID)
}

func (s *TokenService) Logout(ctx context.Context, userID string) error {
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		s.LogError(ctx, err, "failed to clear refresh token", "userID", userID)
		return fmt.Errorf("failed to log out: %w", err)
	}
	return nil
}

// idTokenValidator verifies a Google ID token and extracts the profile
// claims. Swappable in tests.
type idTokenValidator func(ctx context.Context, idToken string, audience string) (*domain.GoogleUserInfo, error)

func validateGoogleIDToken(ctx context.Context, idTokenStr string, audience string) (*domain.GoogleUserInfo, error) {
	payload, err := idtoken.Validate(ctx, idTokenStr, audience)
	if err != nil {
		return nil, err
	}
	info := &domain.GoogleUserInfo{Subject: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		info.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		info.Name = name
	}
	return info, nil
}

// GoogleAuthService signs users in with a Google ID token, creating
// the account on first sign-in.
type GoogleAuthService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	cfg      *config.Config

	validate idTokenValidator
	now      func() time.Time
}

// GoogleAuthServiceOption configures the Google auth service.
type GoogleAuthServiceOption func(*GoogleAuthService)

// WithIDTokenValidator overrides ID token validation, for tests.
func WithIDTokenValidator(v idTokenValidator) GoogleAuthServiceOption {
	return func(s *GoogleAuthService) { s.validate = v }
}

// NewGoogleAuthService creates a new Google auth service instance.
func NewGoogleAuthService(userRepo portsrepo.UserRepositoryFacade, cfg *config.Config, opts ...GoogleAuthServiceOption) *GoogleAuthService {
	svc := &GoogleAuthService{
		userRepo: userRepo,
		cfg:      cfg,
		validate: validateGoogleIDToken,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *GoogleAuthService) AuthenticateWithGoogle(ctx context.Context, idTokenStr string) (*domain.User, bool, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, false, fmt.Errorf("google sign-in not configured: %w", apperrors.ErrValidation)
	}

	info, err := s.validate(ctx, idTokenStr, s.cfg.GoogleClientID)
	if err != nil {
		s.LogInfo(ctx, "google ID token rejected", "error", err.Error())
		return nil, false, apperrors.ErrUnauthorized
	}

	user, err := s.userRepo.FindUserByProviderDetails(ctx, string(domain.ProviderGoogle), info.Subject)
	if err == nil {
		if user.DeletedAt != nil {
			return nil, false, apperrors.ErrUnauthorized
		}
		return user, false, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "failed to look up google user")
		return nil, false, fmt.Errorf("failed to look up user: %w", err)
	}

	now := s.now()
	newUser := domain.User{
		UserID:         uuid.NewString(),
		Email:          strings.ToLower(info.Email),
		DisplayName:    info.Name,
		AuthProvider:   domain.ProviderGoogle,
		ProviderUserID: info.Subject,
	}
	newUser.CreatedAt = now
	newUser.LastUpdatedAt = now

	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		s.LogError(ctx, err, "failed to save google user")
		return nil, false, fmt.Errorf("failed to save user: %w", err)
	}

	s.LogInfo(ctx, "google user registered", "userID", newUser.UserID)
	return &newUser, true, nil
}
