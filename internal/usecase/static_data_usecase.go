package usecase

import (
	"context"
	"errors"

	"clinic-admin/internal/converter"
	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/domain/entity"
	"clinic-admin/internal/domain/repository"
	"clinic-admin/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrStaticDataNotFound  = errors.New("static data item not found")
	ErrDuplicateStaticCode = errors.New("a code already exists in this category")
)

type StaticDataUsecase interface {
	ListByCategory(ctx context.Context, category string) ([]dto.StaticDataResponse, error)
	ListAll(ctx context.Context) ([]dto.StaticDataResponse, error)
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateStaticDataRequest) (*dto.StaticDataResponse, error)
	Update(ctx context.Context, actorID uuid.UUID, id int, req *dto.UpdateStaticDataRequest) (*dto.StaticDataResponse, error)
	Delete(ctx context.Context, actorID uuid.UUID, id int) error
}

type staticDataUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	staticRepo    repository.StaticDataRepository
	staticService service.StaticDataService
	auditService  service.AuditService
}

func NewStaticDataUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	staticRepo repository.StaticDataRepository,
	staticService service.StaticDataService,
	auditService service.AuditService,
) StaticDataUsecase {
	return &staticDataUsecase{
		db:            db,
		log:           log,
		staticRepo:    staticRepo,
		staticService: staticService,
		auditService:  auditService,
	}
}

// ListByCategory serves the dropdown payloads, cache first.
func (u *staticDataUsecase) ListByCategory(ctx context.Context, category string) ([]dto.StaticDataResponse, error) {
	items, err := u.staticService.GetCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	return converter.StaticDataToResponses(items), nil
}

// ListAll serves the admin management screen straight from the database so
// inactive items are visible too.
func (u *staticDataUsecase) ListAll(ctx context.Context) ([]dto.StaticDataResponse, error) {
	items, err := u.staticRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list static data: %+v", err)
		return nil, err
	}

	return converter.StaticDataToResponses(items), nil
}

func (u *staticDataUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateStaticDataRequest) (*dto.StaticDataResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	item := &entity.StaticData{
		Category:  req.Category,
		Code:      req.Code,
		LabelEn:   req.LabelEn,
		LabelAr:   req.LabelAr,
		SortOrder: req.SortOrder,
	}

	if err := u.staticRepo.Create(tx, item); err != nil {
		if isDuplicateKeyError(err, "category_code") {
			return nil, ErrDuplicateStaticCode
		}
		u.log.Warnf("Failed to create static data: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(tx, &actorID, entity.AuditActionStaticCreate, "static_data", item.Code, item); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit static data creation: %+v", err)
		return nil, err
	}

	if err := u.staticService.InvalidateCategory(ctx, item.Category); err != nil {
		u.log.Warnf("Failed to invalidate static data cache: %+v", err)
	}

	return converter.StaticDataToResponse(item), nil
}

func (u *staticDataUsecase) Update(ctx context.Context, actorID uuid.UUID, id int, req *dto.UpdateStaticDataRequest) (*dto.StaticDataResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	item, err := u.staticRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find static data by ID: %+v", err)
		return nil, err
	}
	if item == nil {
		return nil, ErrStaticDataNotFound
	}

	oldValue := *item

	if req.LabelEn != "" {
		item.LabelEn = req.LabelEn
	}
	if req.LabelAr != "" {
		item.LabelAr = req.LabelAr
	}
	if req.SortOrder != nil {
		item.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		item.IsActive = req.IsActive
	}

	if err := u.staticRepo.Update(tx, item); err != nil {
		u.log.Warnf("Failed to update static data: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(tx, &actorID, entity.AuditActionStaticUpdate, "static_data", item.Code, oldValue, item); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit static data update: %+v", err)
		return nil, err
	}

	if err := u.staticService.InvalidateCategory(ctx, item.Category); err != nil {
		u.log.Warnf("Failed to invalidate static data cache: %+v", err)
	}

	return converter.StaticDataToResponse(item), nil
}

func (u *staticDataUsecase) Delete(ctx context.Context, actorID uuid.UUID, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	item, err := u.staticRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find static data by ID: %+v", err)
		return err
	}
	if item == nil {
		return ErrStaticDataNotFound
	}

	if err := u.staticRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete static data: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(tx, &actorID, entity.AuditActionStaticDelete, "static_data", item.Code, item); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit static data deletion: %+v", err)
		return err
	}

	if err := u.staticService.InvalidateCategory(ctx, item.Category); err != nil {
		u.log.Warnf("Failed to invalidate static data cache: %+v", err)
	}

	return nil
}
