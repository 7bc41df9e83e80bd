package dto

// CreateUserRequest defines the data needed to register a user.
type CreateUserRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"displayName"`
}

// LoginRequest defines the login credentials payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleSignInRequest carries the ID token obtained by the mobile
// client from Google Sign-In.
type GoogleSignInRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using a pointer to differentiate between omitted and zero-value fields.
type UpdateUserRequest struct {
	DisplayName *string `json:"displayName"` // Only the display name is updatable for now
}
