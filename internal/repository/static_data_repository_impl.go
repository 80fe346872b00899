package repository

import (
	"errors"

	"clinic-admin/internal/domain/entity"
	domainRepo "clinic-admin/internal/domain/repository"

	"gorm.io/gorm"
)

type staticDataRepository struct{}

func NewStaticDataRepository() domainRepo.StaticDataRepository {
	return &staticDataRepository{}
}

func (r *staticDataRepository) Create(db *gorm.DB, item *entity.StaticData) error {
	return db.Create(item).Error
}

func (r *staticDataRepository) FindByID(db *gorm.DB, id int) (*entity.StaticData, error) {
	var item entity.StaticData
	err := db.Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *staticDataRepository) FindByCategory(db *gorm.DB, category string) ([]entity.StaticData, error) {
	var items []entity.StaticData
	err := db.Where("category = ? AND is_active = true", category).
		Order("sort_order ASC, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *staticDataRepository) FindAll(db *gorm.DB) ([]entity.StaticData, error) {
	var items []entity.StaticData
	err := db.Order("category ASC, sort_order ASC, id ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *staticDataRepository) Update(db *gorm.DB, item *entity.StaticData) error {
	return db.Save(item).Error
}

func (r *staticDataRepository) Delete(db *gorm.DB, id int) error {
	return db.Where("id = ?", id).Delete(&entity.StaticData{}).Error
}
