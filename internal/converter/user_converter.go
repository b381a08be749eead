package converter

import (
	"go-consult-intake/internal/delivery/dto"
	"go-consult-intake/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO.
// The password hash is never exposed.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:                user.ID,
		Username:          user.Username,
		Email:             user.Email,
		FirstName:         user.FirstName,
		LastName:          user.LastName,
		HasMedicalHistory: user.HasMedicalHistory,
		IsAdmin:           user.IsAdmin,
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
	}
}
