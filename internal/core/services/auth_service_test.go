package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mindnote-app/mindnote_backend/internal/apperrors"
	"github.com/mindnote-app/mindnote_backend/internal/core/domain"
	"github.com/mindnote-app/mindnote_backend/internal/core/services"
	"github.com/mindnote-app/mindnote_backend/internal/platform/config"
	"github.com/mindnote-app/mindnote_backend/internal/utils"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:                  "test-secret-key-for-unit-tests",
		JWTExpiryDuration:          time.Hour,
		JWTIssuer:                  "mindnote-test",
		RefreshTokenExpiryDuration: 24 * time.Hour,
		RefreshTokenCookieName:     "rtid",
		RefreshTokenCookiePath:     "/api/v1/auth",
		GoogleClientID:             "test-client-id",
	}
}

// --- Token service ---

type TokenServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  *services.TokenService
	ctx      context.Context
	now      time.Time
}

func TestTokenServiceSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

func (s *TokenServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockUserRepository)
	s.now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	s.service = services.NewTokenService(s.mockRepo, testConfig(),
		services.WithTokenClock(func() time.Time { return s.now }))
	s.ctx = context.Background()
}

func (s *TokenServiceTestSuite) TestGenerateTokenPairStoresHashedRefreshToken() {
	var storedHash string
	var storedExpiry time.Time
	s.mockRepo.UpdateRefreshTokenFn = func(ctx context.Context, userID, hash string, expiry time.Time) error {
		storedHash = hash
		storedExpiry = expiry
		return nil
	}

	pair, err := s.service.GenerateTokenPair(s.ctx, "u1")
	s.Require().NoError(err)
	s.NotEmpty(pair.AccessToken)
	s.True(strings.HasPrefix(pair.RefreshToken, "u1."))

	// Only the hash hits the store, and the raw token matches it.
	s.NotEqual(pair.RefreshToken, storedHash)
	s.Equal(utils.HashRefreshToken(pair.RefreshToken), storedHash)
	s.Equal(s.now.Add(24*time.Hour), storedExpiry)

	claims, err := utils.ParseAndValidateJWT(pair.AccessToken, "test-secret-key-for-unit-tests")
	s.Require().NoError(err)
	s.Equal("u1", claims.Subject)
}

func (s *TokenServiceTestSuite) TestRefreshAccessTokenRotates() {
	var storedHash string
	s.mockRepo.UpdateRefreshTokenFn = func(ctx context.Context, userID, hash string, expiry time.Time) error {
		storedHash = hash
		return nil
	}

	pair, err := s.service.GenerateTokenPair(s.ctx, "u1")
	s.Require().NoError(err)

	expiry := s.now.Add(24 * time.Hour)
	s.mockRepo.FindUserByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		return &domain.User{
			UserID:                 userID,
			RefreshTokenHash:       storedHash,
			RefreshTokenExpiryTime: &expiry,
		}, nil
	}

	rotated, err := s.service.RefreshAccessToken(s.ctx, pair.RefreshToken)
	s.Require().NoError(err)
	s.NotEqual(pair.RefreshToken, rotated.RefreshToken)
	s.Equal(utils.HashRefreshToken(rotated.RefreshToken), storedHash)
}

func (s *TokenServiceTestSuite) TestRefreshAccessTokenExpired() {
	token := "u1.deadbeef"
	expiry := s.now.Add(-time.Minute)
	s.mockRepo.FindUserByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		return &domain.User{
			UserID:                 userID,
			RefreshTokenHash:       utils.HashRefreshToken(token),
			RefreshTokenExpiryTime: &expiry,
		}, nil
	}

	_, err := s.service.RefreshAccessToken(s.ctx, token)
	s.ErrorIs(err, apperrors.ErrRefreshTokenExpired)
}

func (s *TokenServiceTestSuite) TestRefreshAccessTokenMismatch() {
	expiry := s.now.Add(time.Hour)
	s.mockRepo.FindUserByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		return &domain.User{
			UserID:                 userID,
			RefreshTokenHash:       utils.HashRefreshToken("u1.something-else"),
			RefreshTokenExpiryTime: &expiry,
		}, nil
	}

	_, err := s.service.RefreshAccessToken(s.ctx, "u1.stolen")
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *TokenServiceTestSuite) TestRefreshAccessTokenMalformed() {
	_, err := s.service.RefreshAccessToken(s.ctx, "garbage-without-separator")
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *TokenServiceTestSuite) TestLogoutClearsStoredToken() {
	cleared := false
	s.mockRepo.ClearRefreshTokenFn = func(ctx context.Context, userID string) error {
		cleared = true
		return nil
	}

	s.Require().NoError(s.service.Logout(s.ctx, "u1"))
	s.True(cleared)
}

// --- Google auth service ---

type GoogleAuthServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	ctx      context.Context
}

func TestGoogleAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(GoogleAuthServiceTestSuite))
}

func (s *GoogleAuthServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockUserRepository)
	s.ctx = context.Background()
}

func (s *GoogleAuthServiceTestSuite) newService(info *domain.GoogleUserInfo, validateErr error) *services.GoogleAuthService {
	return services.NewGoogleAuthService(s.mockRepo, testConfig(),
		services.WithIDTokenValidator(func(ctx context.Context, idToken string, audience string) (*domain.GoogleUserInfo, error) {
			if validateErr != nil {
				return nil, validateErr
			}
			return info, nil
		}))
}

func (s *GoogleAuthServiceTestSuite) TestFirstSignInCreatesAccount() {
	svc := s.newService(&domain.GoogleUserInfo{Subject: "goog-123", Email: "Jane@Example.com", Name: "Jane"}, nil)
	s.mockRepo.FindUserByProviderDetailsFn = func(ctx context.Context, provider, providerUserID string) (*domain.User, error) {
		return nil, apperrors.ErrNotFound
	}
	var saved domain.User
	s.mockRepo.SaveUserFn = func(ctx context.Context, user domain.User) error {
		saved = user
		return nil
	}

	user, created, err := svc.AuthenticateWithGoogle(s.ctx, "a-token")
	s.Require().NoError(err)
	s.True(created)
	s.Equal("jane@example.com", user.Email)
	s.Equal(domain.ProviderGoogle, saved.AuthProvider)
	s.Equal("goog-123", saved.ProviderUserID)
	s.Nil(saved.PasswordHash)
}

func (s *GoogleAuthServiceTestSuite) TestRepeatSignInFindsAccount() {
	svc := s.newService(&domain.GoogleUserInfo{Subject: "goog-123"}, nil)
	s.mockRepo.FindUserByProviderDetailsFn = func(ctx context.Context, provider, providerUserID string) (*domain.User, error) {
		return &domain.User{UserID: "u1", ProviderUserID: providerUserID}, nil
	}

	user, created, err := svc.AuthenticateWithGoogle(s.ctx, "a-token")
	s.Require().NoError(err)
	s.False(created)
	s.Equal("u1", user.UserID)
}

func (s *GoogleAuthServiceTestSuite) TestInvalidIDToken() {
	svc := s.newService(nil, errors.New("token expired"))

	_, _, err := svc.AuthenticateWithGoogle(s.ctx, "bad-token")
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}
