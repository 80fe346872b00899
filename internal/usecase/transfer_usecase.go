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
	ErrTransferNotFound     = errors.New("transfer not found")
	ErrTransferNotPending   = errors.New("transfer is no longer pending")
	ErrTransferSelf         = errors.New("cannot transfer a record to yourself")
	ErrRecipientNotFound    = errors.New("recipient not found or inactive")
	ErrNotTransferRecipient = errors.New("only the recipient can decide this transfer")
	ErrNotTransferSender    = errors.New("only the sender can cancel this transfer")
)

type TransferUsecase interface {
	List(ctx context.Context, userID uuid.UUID, q repository.ListQuery) ([]dto.TransferResponse, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.TransferResponse, error)
	Create(ctx context.Context, senderID uuid.UUID, req *dto.CreateTransferRequest) (*dto.TransferResponse, error)
	Accept(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*dto.TransferResponse, error)
	Reject(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*dto.TransferResponse, error)
	Cancel(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*dto.TransferResponse, error)
}

type transferUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	transferRepo repository.TransferRepository
	recordRepo   repository.MedicalRecordRepository
	userRepo     repository.UserRepository
	auditService service.AuditService
}

func NewTransferUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	transferRepo repository.TransferRepository,
	recordRepo repository.MedicalRecordRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) TransferUsecase {
	return &transferUsecase{
		db:           db,
		log:          log,
		transferRepo: transferRepo,
		recordRepo:   recordRepo,
		userRepo:     userRepo,
		auditService: auditService,
	}
}

func (u *transferUsecase) List(ctx context.Context, userID uuid.UUID, q repository.ListQuery) ([]dto.TransferResponse, int64, error) {
	transfers, total, err := u.transferRepo.List(u.db.WithContext(ctx), userID, q)
	if err != nil {
		u.log.Warnf("Failed to list transfers: %+v", err)
		return nil, 0, err
	}

	return converter.TransfersToResponses(transfers), total, nil
}

func (u *transferUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.TransferResponse, error) {
	transfer, err := u.transferRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find transfer by ID: %+v", err)
		return nil, err
	}
	if transfer == nil {
		return nil, ErrTransferNotFound
	}

	return converter.TransferToResponse(transfer), nil
}

func (u *transferUsecase) Create(ctx context.Context, senderID uuid.UUID, req *dto.CreateTransferRequest) (*dto.TransferResponse, error) {
	if req.ToUserID == senderID {
		return nil, ErrTransferSelf
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	record, err := u.recordRepo.FindByID(tx, req.RecordID)
	if err != nil {
		u.log.Warnf("Failed to find medical record by ID: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	recipient, err := u.userRepo.FindByID(tx, req.ToUserID)
	if err != nil {
		u.log.Warnf("Failed to find recipient by ID: %+v", err)
		return nil, err
	}
	if recipient == nil || recipient.IsActive == nil || !*recipient.IsActive {
		return nil, ErrRecipientNotFound
	}

	transfer := &entity.Transfer{
		RecordID:   req.RecordID,
		FromUserID: senderID,
		ToUserID:   req.ToUserID,
		Status:     entity.TransferStatusPending,
		Message:    req.Message,
	}

	if err := u.transferRepo.Create(tx, transfer); err != nil {
		u.log.Warnf("Failed to create transfer: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogAction(tx, &senderID, entity.AuditActionTransferCreate, entity.JSON{
		"transfer_id": transfer.ID.String(),
		"record_id":   req.RecordID.String(),
		"to_user_id":  req.ToUserID.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transfer creation: %+v", err)
		return nil, err
	}

	return u.GetByID(ctx, transfer.ID)
}

// Accept reassigns the record to the recipient in the same transaction that
// flips the transfer status, so ownership and status can never disagree.
func (u *transferUsecase) Accept(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*dto.TransferResponse, error) {
	return u.decide(ctx, userID, id, entity.AuditActionTransferAccept, func(transfer *entity.Transfer) error {
		if transfer.ToUserID != userID {
			return ErrNotTransferRecipient
		}
		if !transfer.Accept() {
			return ErrTransferNotPending
		}
		return nil
	}, true)
}

func (u *transferUsecase) Reject(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*dto.TransferResponse, error) {
	return u.decide(ctx, userID, id, entity.AuditActionTransferReject, func(transfer *entity.Transfer) error {
		if transfer.ToUserID != userID {
			return ErrNotTransferRecipient
		}
		if !transfer.Reject() {
			return ErrTransferNotPending
		}
		return nil
	}, false)
}

func (u *transferUsecase) Cancel(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*dto.TransferResponse, error) {
	return u.decide(ctx, userID, id, entity.AuditActionTransferCancel, func(transfer *entity.Transfer) error {
		if transfer.FromUserID != userID {
			return ErrNotTransferSender
		}
		if !transfer.Cancel() {
			return ErrTransferNotPending
		}
		return nil
	}, false)
}

func (u *transferUsecase) decide(
	ctx context.Context,
	userID uuid.UUID,
	id uuid.UUID,
	auditAction string,
	transition func(transfer *entity.Transfer) error,
	reassignRecord bool,
) (*dto.TransferResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	transfer, err := u.transferRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find transfer by ID: %+v", err)
		return nil, err
	}
	if transfer == nil {
		return nil, ErrTransferNotFound
	}

	if err := transition(transfer); err != nil {
		return nil, err
	}

	if err := u.transferRepo.Update(tx, transfer); err != nil {
		u.log.Warnf("Failed to update transfer: %+v", err)
		return nil, err
	}

	if reassignRecord {
		record, err := u.recordRepo.FindByID(tx, transfer.RecordID)
		if err != nil {
			u.log.Warnf("Failed to find medical record by ID: %+v", err)
			return nil, err
		}
		if record == nil {
			return nil, ErrRecordNotFound
		}
		record.DoctorID = transfer.ToUserID
		if err := u.recordRepo.Update(tx, record); err != nil {
			u.log.Warnf("Failed to reassign medical record: %+v", err)
			return nil, err
		}
	}

	if err := u.auditService.LogAction(tx, &userID, auditAction, entity.JSON{
		"transfer_id": transfer.ID.String(),
		"record_id":   transfer.RecordID.String(),
		"status":      string(transfer.Status),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transfer decision: %+v", err)
		return nil, err
	}

	return u.GetByID(ctx, transfer.ID)
}
