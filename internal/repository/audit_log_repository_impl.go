package repository

import (
	"errors"

	"clinic-admin/internal/domain/entity"
	domainRepo "clinic-admin/internal/domain/repository"

	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(db *gorm.DB, auditLog *entity.AuditLog) error {
	return db.Create(auditLog).Error
}

func (r *auditLogRepository) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	var auditLog entity.AuditLog
	err := db.Preload("User").Where("id = ?", id).First(&auditLog).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &auditLog, nil
}

func (r *auditLogRepository) List(db *gorm.DB, q domainRepo.ListQuery) ([]entity.AuditLog, int64, error) {
	q = q.Normalize()

	query := db.Model(&entity.AuditLog{})

	if action, ok := q.Filter("action"); ok {
		query = query.Where("action = ?", action)
	}
	if userID, ok := q.Filter("user_id"); ok {
		query = query.Where("user_id = ?", userID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []entity.AuditLog
	err := query.Preload("User").
		Order("created_at DESC").
		Limit(q.Limit).
		Offset(q.Offset()).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
