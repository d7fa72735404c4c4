package dto

import (
	"time"

	"github.com/finbook/backend/internal/domain/entity"
)

// RegisterUserRequest represents the request body for user registration.
type RegisterUserRequest struct {
	Username  string  `json:"username" binding:"required,min=3,max=50"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=8"`
	FirstName string  `json:"first_name" binding:"required"`
	LastName  string  `json:"last_name" binding:"required"`
	Avatar    *string `json:"avatar,omitempty"`
}

// ProfileResponse represents a profile in API responses.
type ProfileResponse struct {
	ID        string  `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Avatar    *string `json:"avatar,omitempty"`
}

// UserResponse represents a single user in API responses. The password hash
// never leaves the server.
type UserResponse struct {
	ID        string           `json:"id"`
	Username  string           `json:"username"`
	Email     string           `json:"email"`
	Profile   *ProfileResponse `json:"profile,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(u *entity.User, p *entity.Profile) UserResponse {
	response := UserResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}

	if p != nil {
		response.Profile = &ProfileResponse{
			ID:        p.ID.String(),
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Avatar:    p.Avatar,
		}
	}

	return response
}
