package repository

import (
	"errors"

	"clinic-admin/internal/domain/entity"
	domainRepo "clinic-admin/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(db *gorm.DB, user *entity.User) error {
	return db.Create(user).Error
}

func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	var user entity.User
	err := db.Preload("Role").Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := db.Preload("Role").Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(db *gorm.DB, user *entity.User) error {
	return db.Save(user).Error
}

func (r *userRepository) List(db *gorm.DB, q domainRepo.ListQuery) ([]entity.User, int64, error) {
	q = q.Normalize()

	query := db.Model(&entity.User{})

	if q.Search != "" {
		term := "%" + q.Search + "%"
		query = query.Where("full_name ILIKE ? OR email ILIKE ?", term, term)
	}
	if role, ok := q.Filter("role_id"); ok {
		query = query.Where("role_id = ?", role)
	}
	if active, ok := q.Filter("is_active"); ok {
		query = query.Where("is_active = ?", active == "true")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []entity.User
	err := query.Preload("Role").
		Order("created_at DESC").
		Limit(q.Limit).
		Offset(q.Offset()).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *userRepository) SearchActive(db *gorm.DB, term string, limit int) ([]entity.User, error) {
	var users []entity.User
	pattern := "%" + term + "%"
	err := db.Preload("Role").
		Where("is_active = true").
		Where("full_name ILIKE ? OR email ILIKE ?", pattern, pattern).
		Order("full_name ASC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
