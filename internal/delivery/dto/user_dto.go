package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type CreateUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	FullName    string `json:"full_name" validate:"required,min=2"`
	PhoneNumber string `json:"phone_number" validate:"omitempty"`
	RoleID      int    `json:"role_id" validate:"required,gte=1,lte=4"`
}

type UpdateUserRequest struct {
	Email       string `json:"email" validate:"omitempty,email"`
	Password    string `json:"password" validate:"omitempty,min=6"`
	FullName    string `json:"full_name" validate:"omitempty,min=2"`
	PhoneNumber string `json:"phone_number" validate:"omitempty"`
	RoleID      int    `json:"role_id" validate:"omitempty,gte=1,lte=4"`
	IsActive    *bool  `json:"is_active" validate:"omitempty"`
}

type UpdateProfileRequest struct {
	FullName    string `json:"full_name" validate:"omitempty,min=2"`
	PhoneNumber string `json:"phone_number" validate:"omitempty"`
	OldPassword string `json:"old_password" validate:"omitempty"`
	Password    string `json:"password" validate:"omitempty,min=6"`
}

// Response DTOs

type UserLookupResponse struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
}
