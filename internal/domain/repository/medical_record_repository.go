package repository

import (
	"clinic-admin/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicalRecordRepository interface {
	Create(db *gorm.DB, record *entity.MedicalRecord) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.MedicalRecord, error)
	Update(db *gorm.DB, record *entity.MedicalRecord) error
	Delete(db *gorm.DB, id uuid.UUID) error
	List(db *gorm.DB, q ListQuery) ([]entity.MedicalRecord, int64, error)
}
