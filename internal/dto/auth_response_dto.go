package dto

import "time"

// LoginResponse returns the access token issued after a successful
// login, registration, or Google sign-in. The refresh token travels in
// an HTTP-only cookie, never in the body.
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        UserResponse `json:"user"`
}
