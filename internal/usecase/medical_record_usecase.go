package usecase

import (
	"context"
	"errors"
	"time"

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
	ErrRecordNotFound     = errors.New("medical record not found")
	ErrDoctorNotFound     = errors.New("doctor not found")
	ErrUserNotDoctor      = errors.New("assigned user is not a doctor")
	ErrRecordHasTransfers = errors.New("record has a pending transfer and cannot be deleted")
)

type MedicalRecordUsecase interface {
	List(ctx context.Context, q repository.ListQuery) ([]dto.MedicalRecordResponse, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.MedicalRecordResponse, error)
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	Update(ctx context.Context, actorID uuid.UUID, id uuid.UUID, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	Delete(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error
}

type medicalRecordUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	recordRepo   repository.MedicalRecordRepository
	patientRepo  repository.PatientRepository
	userRepo     repository.UserRepository
	auditService service.AuditService
}

func NewMedicalRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	recordRepo repository.MedicalRecordRepository,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		db:           db,
		log:          log,
		recordRepo:   recordRepo,
		patientRepo:  patientRepo,
		userRepo:     userRepo,
		auditService: auditService,
	}
}

func (u *medicalRecordUsecase) List(ctx context.Context, q repository.ListQuery) ([]dto.MedicalRecordResponse, int64, error) {
	records, total, err := u.recordRepo.List(u.db.WithContext(ctx), q)
	if err != nil {
		u.log.Warnf("Failed to list medical records: %+v", err)
		return nil, 0, err
	}

	return converter.MedicalRecordsToResponses(records), total, nil
}

func (u *medicalRecordUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.MedicalRecordResponse, error) {
	record, err := u.recordRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find medical record by ID: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	visitDate, err := time.Parse("2006-01-02", req.VisitDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.userRepo.FindByID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor by ID: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	if doctor.RoleID != entity.RoleIDDoctor {
		return nil, ErrUserNotDoctor
	}

	record := &entity.MedicalRecord{
		PatientID:  req.PatientID,
		DoctorID:   req.DoctorID,
		RecordType: req.RecordType,
		Title:      req.Title,
		Diagnosis:  req.Diagnosis,
		Notes:      req.Notes,
		Fee:        req.Fee,
		VisitDate:  visitDate,
	}

	if err := u.recordRepo.Create(tx, record); err != nil {
		u.log.Warnf("Failed to create medical record: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(tx, &actorID, entity.AuditActionRecordCreate, "medical_record", record.ID.String(), record); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit medical record creation: %+v", err)
		return nil, err
	}

	record.Patient = *patient
	record.Doctor = *doctor
	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) Update(ctx context.Context, actorID uuid.UUID, id uuid.UUID, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	record, err := u.recordRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find medical record by ID: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	oldValue := *record

	if req.RecordType != "" {
		record.RecordType = req.RecordType
	}
	if req.Title != "" {
		record.Title = req.Title
	}
	if req.Diagnosis != "" {
		record.Diagnosis = req.Diagnosis
	}
	if req.Notes != "" {
		record.Notes = req.Notes
	}
	if !req.Fee.IsZero() {
		record.Fee = req.Fee
	}
	if req.VisitDate != "" {
		visitDate, err := time.Parse("2006-01-02", req.VisitDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		record.VisitDate = visitDate
	}

	if err := u.recordRepo.Update(tx, record); err != nil {
		u.log.Warnf("Failed to update medical record: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(tx, &actorID, entity.AuditActionRecordUpdate, "medical_record", record.ID.String(), oldValue, record); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit medical record update: %+v", err)
		return nil, err
	}

	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) Delete(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	record, err := u.recordRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find medical record by ID: %+v", err)
		return err
	}
	if record == nil {
		return ErrRecordNotFound
	}

	if err := u.recordRepo.Delete(tx, id); err != nil {
		if isForeignKeyError(err, "record") {
			return ErrRecordHasTransfers
		}
		u.log.Warnf("Failed to delete medical record: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(tx, &actorID, entity.AuditActionRecordDelete, "medical_record", record.ID.String(), record); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit medical record deletion: %+v", err)
		return err
	}

	return nil
}
