package repository

import (
	"clinic-admin/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	Update(db *gorm.DB, user *entity.User) error
	List(db *gorm.DB, q ListQuery) ([]entity.User, int64, error)
	SearchActive(db *gorm.DB, term string, limit int) ([]entity.User, error)
}
