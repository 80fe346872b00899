package repository

import (
	"errors"

	"clinic-admin/internal/domain/entity"
	domainRepo "clinic-admin/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type transferRepository struct{}

func NewTransferRepository() domainRepo.TransferRepository {
	return &transferRepository{}
}

func (r *transferRepository) Create(db *gorm.DB, transfer *entity.Transfer) error {
	return db.Create(transfer).Error
}

func (r *transferRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Transfer, error) {
	var transfer entity.Transfer
	err := db.Preload("Record").Preload("Record.Patient").
		Preload("FromUser").Preload("ToUser").
		Where("id = ?", id).First(&transfer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &transfer, nil
}

func (r *transferRepository) Update(db *gorm.DB, transfer *entity.Transfer) error {
	return db.Save(transfer).Error
}

// List returns transfers visible to userID. The direction filter narrows to
// "incoming" (user is recipient) or "outgoing" (user is sender); without it
// both directions are returned.
func (r *transferRepository) List(db *gorm.DB, userID uuid.UUID, q domainRepo.ListQuery) ([]entity.Transfer, int64, error) {
	q = q.Normalize()

	query := db.Model(&entity.Transfer{})

	switch direction, _ := q.Filter("direction"); direction {
	case "incoming":
		query = query.Where("to_user_id = ?", userID)
	case "outgoing":
		query = query.Where("from_user_id = ?", userID)
	default:
		query = query.Where("from_user_id = ? OR to_user_id = ?", userID, userID)
	}

	if status, ok := q.Filter("status"); ok {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var transfers []entity.Transfer
	err := query.Preload("Record").Preload("Record.Patient").
		Preload("FromUser").Preload("ToUser").
		Order("created_at DESC").
		Limit(q.Limit).
		Offset(q.Offset()).
		Find(&transfers).Error
	if err != nil {
		return nil, 0, err
	}

	return transfers, total, nil
}
