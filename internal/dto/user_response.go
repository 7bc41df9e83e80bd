package dto

import (
	"time"

	"github.com/mindnote-app/mindnote_backend/internal/core/domain"
)

// UserResponse defines the user data exposed over the API.
type UserResponse struct {
	UserID       string    `json:"userID"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"displayName"`
	AuthProvider string    `json:"authProvider"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:       u.UserID,
		Email:        u.Email,
		DisplayName:  u.DisplayName,
		AuthProvider: string(u.AuthProvider),
		CreatedAt:    u.CreatedAt,
	}
}
