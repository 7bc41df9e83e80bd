package models

import "time"

// User is the database representation of a journal owner.
type User struct {
	UserID         string  `json:"userID"`
	Email          string  `json:"email"`
	DisplayName    string  `json:"displayName"`
	PasswordHash   *string `json:"-"`
	AuthProvider   string  `json:"authProvider"`
	ProviderUserID string  `json:"-"`

	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`

	AuditFields
	DeletedAt *time.Time `json:"-"`
}
