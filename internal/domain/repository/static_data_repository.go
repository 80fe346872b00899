package repository

import (
	"clinic-admin/internal/domain/entity"

	"gorm.io/gorm"
)

type StaticDataRepository interface {
	Create(db *gorm.DB, item *entity.StaticData) error
	FindByID(db *gorm.DB, id int) (*entity.StaticData, error)
	FindByCategory(db *gorm.DB, category string) ([]entity.StaticData, error)
	FindAll(db *gorm.DB) ([]entity.StaticData, error)
	Update(db *gorm.DB, item *entity.StaticData) error
	Delete(db *gorm.DB, id int) error
}
