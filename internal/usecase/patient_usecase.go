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
	ErrPatientNotFound     = errors.New("patient not found")
	ErrDuplicateMRN        = errors.New("a patient with this MRN already exists")
	ErrDuplicateNationalID = errors.New("a patient with this national ID already exists")
	ErrPatientHasRecords   = errors.New("patient has medical records and cannot be deleted")
	ErrInvalidDateFormat   = errors.New("invalid date format, use YYYY-MM-DD")
)

type PatientUsecase interface {
	List(ctx context.Context, q repository.ListQuery) ([]dto.PatientResponse, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	Update(ctx context.Context, actorID uuid.UUID, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

func (u *patientUsecase) List(ctx context.Context, q repository.ListQuery) ([]dto.PatientResponse, int64, error) {
	patients, total, err := u.patientRepo.List(u.db.WithContext(ctx), q)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, 0, err
	}

	return converter.PatientsToResponses(patients), total, nil
}

func (u *patientUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	dateOfBirth, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient := &entity.Patient{
		MRN:         req.MRN,
		NationalID:  req.NationalID,
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		DateOfBirth: dateOfBirth,
		Gender:      req.Gender,
		BloodType:   req.BloodType,
		Address:     req.Address,
	}

	if err := u.patientRepo.Create(tx, patient); err != nil {
		if isDuplicateKeyError(err, "mrn") {
			return nil, ErrDuplicateMRN
		}
		if isDuplicateKeyError(err, "national_id") {
			return nil, ErrDuplicateNationalID
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(tx, &actorID, entity.AuditActionPatientCreate, "patient", patient.ID.String(), patient); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit patient creation: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Update(ctx context.Context, actorID uuid.UUID, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	oldValue := *patient

	if req.FullName != "" {
		patient.FullName = req.FullName
	}
	if req.Email != "" {
		patient.Email = req.Email
	}
	if req.PhoneNumber != "" {
		patient.PhoneNumber = req.PhoneNumber
	}
	if req.DateOfBirth != "" {
		dateOfBirth, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		patient.DateOfBirth = dateOfBirth
	}
	if req.Gender != "" {
		patient.Gender = req.Gender
	}
	if req.BloodType != "" {
		patient.BloodType = req.BloodType
	}
	if req.Address != "" {
		patient.Address = req.Address
	}

	if err := u.patientRepo.Update(tx, patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(tx, &actorID, entity.AuditActionPatientUpdate, "patient", patient.ID.String(), oldValue, patient); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit patient update: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Delete(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	if err := u.patientRepo.Delete(tx, id); err != nil {
		if isForeignKeyError(err, "patient") {
			return ErrPatientHasRecords
		}
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(tx, &actorID, entity.AuditActionPatientDelete, "patient", patient.ID.String(), patient); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit patient deletion: %+v", err)
		return err
	}

	return nil
}
