package services

import (
	"context"
	"time"

	"github.com/mindnote-app/mindnote_backend/internal/core/domain"
)

// TokenPair bundles a newly issued access token with its refresh token.
type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

// TokenSvcFacade defines token issuing and rotation operations.
type TokenSvcFacade interface {
	// GenerateTokenPair issues an access token and a rotating refresh
	// token, persisting the refresh token hash.
	GenerateTokenPair(ctx context.Context, userID string) (*TokenPair, error)

	// RefreshAccessToken validates the presented refresh token and
	// rotates the pair. Returns apperrors.ErrRefreshTokenExpired when
	// the token is expired or revoked.
	RefreshAccessToken(ctx context.Context, refreshToken string) (*TokenPair, error)

	// Logout revokes the user's stored refresh token.
	Logout(ctx context.Context, userID string) error
}

// GoogleAuthSvcFacade defines Google ID-token sign-in.
type GoogleAuthSvcFacade interface {
	// AuthenticateWithGoogle validates the Google ID token and finds
	// or creates the matching account. The boolean reports whether the
	// account was created by this call.
	AuthenticateWithGoogle(ctx context.Context, idToken string) (*domain.User, bool, error)
}
