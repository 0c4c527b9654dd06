package dto

import "github.com/tubeview/tubeview_backend/internal/core/domain"

// RegisterRequest carries new account credentials.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public projection of a user record.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthResponse is returned by both register and login.
type AuthResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// ProfileResponse is returned by the authenticated profile lookup.
type ProfileResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}

// ToUserResponse converts a domain.User to its public projection.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
