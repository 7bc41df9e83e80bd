package domain

import "time"

// AuthProvider identifies how a user account authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User represents a journal owner.
type User struct {
	UserID         string       `json:"userID"`
	Email          string       `json:"email"`
	DisplayName    string       `json:"displayName"`
	PasswordHash   *string      `json:"-"` // nil for Google-only accounts
	AuthProvider   AuthProvider `json:"authProvider"`
	ProviderUserID string       `json:"-"` // Google subject claim for ProviderGoogle accounts

	// Refresh token state; never exposed in JSON responses.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`

	AuditFields
	DeletedAt *time.Time `json:"-"` // soft delete marker
}

// GoogleUserInfo carries the verified fields extracted from a Google ID token.
type GoogleUserInfo struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}
