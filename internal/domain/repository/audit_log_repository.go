package repository

import (
	"clinic-admin/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, auditLog *entity.AuditLog) error
	FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error)
	List(db *gorm.DB, q ListQuery) ([]entity.AuditLog, int64, error)
}
