package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MedicalRecord represents a clinical record owned by a doctor for a patient
type MedicalRecord struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"doctor_id"`
	RecordType string          `gorm:"type:varchar(50);not null;index" json:"record_type"`
	Title      string          `gorm:"type:varchar(255);not null" json:"title"`
	Diagnosis  string          `gorm:"type:text;not null" json:"diagnosis"`
	Notes      string          `gorm:"type:text" json:"notes,omitempty"`
	Fee        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"fee"`
	VisitDate  time.Time       `gorm:"type:date;not null;index" json:"visit_date"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient   Patient    `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor    User       `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Transfers []Transfer `gorm:"foreignKey:RecordID" json:"transfers,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}
