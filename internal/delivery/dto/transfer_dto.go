package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateTransferRequest struct {
	RecordID uuid.UUID `json:"record_id" validate:"required"`
	ToUserID uuid.UUID `json:"to_user_id" validate:"required"`
	Message  string    `json:"message" validate:"omitempty,max=500"`
}

// Response DTOs

type TransferResponse struct {
	ID           uuid.UUID `json:"id"`
	RecordID     uuid.UUID `json:"record_id"`
	RecordTitle  string    `json:"record_title,omitempty"`
	PatientName  string    `json:"patient_name,omitempty"`
	FromUserID   uuid.UUID `json:"from_user_id"`
	FromUserName string    `json:"from_user_name,omitempty"`
	ToUserID     uuid.UUID `json:"to_user_id"`
	ToUserName   string    `json:"to_user_name,omitempty"`
	Status       string    `json:"status"`
	Message      string    `json:"message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
