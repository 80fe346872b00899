package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a registered patient in the organization
type Patient struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	MRN         string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"mrn"`
	NationalID  string    `gorm:"type:varchar(30);uniqueIndex;not null" json:"national_id"`
	FullName    string    `gorm:"type:varchar(255);not null;index" json:"full_name"`
	Email       string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	PhoneNumber string    `gorm:"type:varchar(20);index" json:"phone_number,omitempty"`
	DateOfBirth time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Gender      string    `gorm:"type:char(1);not null" json:"gender"`
	BloodType   string    `gorm:"type:varchar(5)" json:"blood_type,omitempty"`
	Address     string    `gorm:"type:text" json:"address,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	MedicalRecords []MedicalRecord `gorm:"foreignKey:PatientID" json:"medical_records,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
)
