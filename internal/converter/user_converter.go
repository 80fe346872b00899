package converter

import (
	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/domain/entity"
)

// UserToResponse converts a User entity to its response DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		FullName:    user.FullName,
		PhoneNumber: user.PhoneNumber,
		Role:        user.RoleCode(),
		IsActive:    user.IsActive,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

// UsersToResponses converts a slice of User entities
func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *UserToResponse(&users[i]))
	}
	return responses
}

// UserToLookupResponse converts a User entity to the picker DTO
func UserToLookupResponse(user *entity.User) *dto.UserLookupResponse {
	if user == nil {
		return nil
	}

	return &dto.UserLookupResponse{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     user.RoleCode(),
	}
}

// UsersToLookupResponses converts a slice of User entities to picker DTOs
func UsersToLookupResponses(users []entity.User) []dto.UserLookupResponse {
	responses := make([]dto.UserLookupResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *UserToLookupResponse(&users[i]))
	}
	return responses
}
