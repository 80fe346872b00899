package repository

import (
	"clinic-admin/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransferRepository interface {
	Create(db *gorm.DB, transfer *entity.Transfer) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Transfer, error)
	Update(db *gorm.DB, transfer *entity.Transfer) error
	List(db *gorm.DB, userID uuid.UUID, q ListQuery) ([]entity.Transfer, int64, error)
}
