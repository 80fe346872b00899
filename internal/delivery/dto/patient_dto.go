package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePatientRequest struct {
	MRN         string `json:"mrn" validate:"required"`
	NationalID  string `json:"national_id" validate:"required"`
	FullName    string `json:"full_name" validate:"required,min=2"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phone_number" validate:"omitempty"`
	DateOfBirth string `json:"date_of_birth" validate:"required"`
	Gender      string `json:"gender" validate:"required,oneof=M F"`
	BloodType   string `json:"blood_type" validate:"omitempty"`
	Address     string `json:"address" validate:"omitempty"`
}

type UpdatePatientRequest struct {
	FullName    string `json:"full_name" validate:"omitempty,min=2"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phone_number" validate:"omitempty"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty"`
	Gender      string `json:"gender" validate:"omitempty,oneof=M F"`
	BloodType   string `json:"blood_type" validate:"omitempty"`
	Address     string `json:"address" validate:"omitempty"`
}

// Response DTOs

type PatientResponse struct {
	ID          uuid.UUID `json:"id"`
	MRN         string    `json:"mrn"`
	NationalID  string    `json:"national_id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email,omitempty"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	DateOfBirth string    `json:"date_of_birth"`
	Gender      string    `json:"gender"`
	BloodType   string    `json:"blood_type,omitempty"`
	Address     string    `json:"address,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
