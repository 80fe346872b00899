package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateMedicalRecordRequest struct {
	PatientID  uuid.UUID       `json:"patient_id" validate:"required"`
	DoctorID   uuid.UUID       `json:"doctor_id" validate:"required"`
	RecordType string          `json:"record_type" validate:"required"`
	Title      string          `json:"title" validate:"required,min=2"`
	Diagnosis  string          `json:"diagnosis" validate:"required"`
	Notes      string          `json:"notes" validate:"omitempty"`
	Fee        decimal.Decimal `json:"fee" validate:"omitempty"`
	VisitDate  string          `json:"visit_date" validate:"required"`
}

type UpdateMedicalRecordRequest struct {
	RecordType string          `json:"record_type" validate:"omitempty"`
	Title      string          `json:"title" validate:"omitempty,min=2"`
	Diagnosis  string          `json:"diagnosis" validate:"omitempty"`
	Notes      string          `json:"notes" validate:"omitempty"`
	Fee        decimal.Decimal `json:"fee" validate:"omitempty"`
	VisitDate  string          `json:"visit_date" validate:"omitempty"`
}

// Response DTOs

type MedicalRecordResponse struct {
	ID          uuid.UUID       `json:"id"`
	PatientID   uuid.UUID       `json:"patient_id"`
	PatientName string          `json:"patient_name,omitempty"`
	PatientMRN  string          `json:"patient_mrn,omitempty"`
	DoctorID    uuid.UUID       `json:"doctor_id"`
	DoctorName  string          `json:"doctor_name,omitempty"`
	RecordType  string          `json:"record_type"`
	Title       string          `json:"title"`
	Diagnosis   string          `json:"diagnosis"`
	Notes       string          `json:"notes,omitempty"`
	Fee         decimal.Decimal `json:"fee"`
	VisitDate   string          `json:"visit_date"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
