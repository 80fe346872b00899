package repository

import (
	"errors"

	"clinic-admin/internal/domain/entity"
	domainRepo "clinic-admin/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type medicalRecordRepository struct{}

func NewMedicalRecordRepository() domainRepo.MedicalRecordRepository {
	return &medicalRecordRepository{}
}

func (r *medicalRecordRepository) Create(db *gorm.DB, record *entity.MedicalRecord) error {
	return db.Create(record).Error
}

func (r *medicalRecordRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.MedicalRecord, error) {
	var record entity.MedicalRecord
	err := db.Preload("Patient").Preload("Doctor").Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *medicalRecordRepository) Update(db *gorm.DB, record *entity.MedicalRecord) error {
	return db.Save(record).Error
}

func (r *medicalRecordRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.MedicalRecord{}).Error
}

func (r *medicalRecordRepository) List(db *gorm.DB, q domainRepo.ListQuery) ([]entity.MedicalRecord, int64, error) {
	q = q.Normalize()

	query := db.Model(&entity.MedicalRecord{})

	if q.Search != "" {
		term := "%" + q.Search + "%"
		query = query.Where("title ILIKE ? OR diagnosis ILIKE ?", term, term)
	}
	if recordType, ok := q.Filter("record_type"); ok {
		query = query.Where("record_type = ?", recordType)
	}
	if patientID, ok := q.Filter("patient_id"); ok {
		query = query.Where("patient_id = ?", patientID)
	}
	if doctorID, ok := q.Filter("doctor_id"); ok {
		query = query.Where("doctor_id = ?", doctorID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []entity.MedicalRecord
	err := query.Preload("Patient").Preload("Doctor").
		Order("visit_date DESC, created_at DESC").
		Limit(q.Limit).
		Offset(q.Offset()).
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}
