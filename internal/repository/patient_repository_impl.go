package repository

import (
	"errors"

	"clinic-admin/internal/domain/entity"
	domainRepo "clinic-admin/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	return db.Save(patient).Error
}

func (r *patientRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.Patient{}).Error
}

func (r *patientRepository) List(db *gorm.DB, q domainRepo.ListQuery) ([]entity.Patient, int64, error) {
	q = q.Normalize()

	query := db.Model(&entity.Patient{})

	if q.Search != "" {
		term := "%" + q.Search + "%"
		query = query.Where("full_name ILIKE ? OR mrn ILIKE ? OR national_id ILIKE ?", term, term, term)
	}
	if gender, ok := q.Filter("gender"); ok {
		query = query.Where("gender = ?", gender)
	}
	if bloodType, ok := q.Filter("blood_type"); ok {
		query = query.Where("blood_type = ?", bloodType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var patients []entity.Patient
	err := query.Order("created_at DESC").
		Limit(q.Limit).
		Offset(q.Offset()).
		Find(&patients).Error
	if err != nil {
		return nil, 0, err
	}

	return patients, total, nil
}
