package handlers

import (
	"github.com/google/uuid"

	"github.com/ghuser/shareit/services/user/domain/models"
)

// UserResponse is the canonical wire representation of a user.
type UserResponse struct {
	ID    uuid.UUID `json:"id"    example:"123e4567-e89b-12d3-a456-426614174000"`
	Name  string    `json:"name"  example:"Alice"`
	Email string    `json:"email" example:"alice@example.com"`
} // @name UserResponse

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}
