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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrDuplicateEmail   = errors.New("a user with this email already exists")
	ErrInvalidRole      = errors.New("invalid role")
	ErrWrongOldPassword = errors.New("old password is incorrect")
)

type UserUsecase interface {
	List(ctx context.Context, q repository.ListQuery) ([]dto.UserResponse, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	Update(ctx context.Context, actorID uuid.UUID, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Deactivate(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error
	Lookup(ctx context.Context, userID uuid.UUID, term string) ([]dto.UserLookupResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

type userUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	userRepo       repository.UserRepository
	roleRepo       repository.RoleRepository
	lookupService  service.LookupService
	sessionService service.SessionService
	auditService   service.AuditService
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	lookupService service.LookupService,
	sessionService service.SessionService,
	auditService service.AuditService,
) UserUsecase {
	return &userUsecase{
		db:             db,
		log:            log,
		userRepo:       userRepo,
		roleRepo:       roleRepo,
		lookupService:  lookupService,
		sessionService: sessionService,
		auditService:   auditService,
	}
}

func (u *userUsecase) List(ctx context.Context, q repository.ListQuery) ([]dto.UserResponse, int64, error) {
	users, total, err := u.userRepo.List(u.db.WithContext(ctx), q)
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, 0, err
	}

	return converter.UsersToResponses(users), total, nil
}

func (u *userUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	role, err := u.roleRepo.FindByID(tx, req.RoleID)
	if err != nil {
		u.log.Warnf("Failed to find role by ID: %+v", err)
		return nil, err
	}
	if role == nil {
		return nil, ErrInvalidRole
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		RoleID:      req.RoleID,
		Email:       req.Email,
		Password:    string(hashedPassword),
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrDuplicateEmail
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(tx, &actorID, entity.AuditActionUserCreate, "user", user.ID.String(), entity.JSON{
		"email":     user.Email,
		"full_name": user.FullName,
		"role_id":   user.RoleID,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit user creation: %+v", err)
		return nil, err
	}

	user.Role = *role
	return converter.UserToResponse(user), nil
}

func (u *userUsecase) Update(ctx context.Context, actorID uuid.UUID, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		user.Password = string(hashedPassword)
	}
	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.RoleID != 0 {
		role, err := u.roleRepo.FindByID(tx, req.RoleID)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, ErrInvalidRole
		}
		user.RoleID = req.RoleID
		user.Role = *role
	}
	if req.IsActive != nil {
		user.IsActive = req.IsActive
	}

	if err := u.userRepo.Update(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrDuplicateEmail
		}
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogAction(tx, &actorID, entity.AuditActionUserUpdate, entity.JSON{
		"user_id": user.ID.String(),
		"email":   user.Email,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit user update: %+v", err)
		return nil, err
	}

	// Role or active changes must reach the cached session before the next
	// guarded navigation.
	if _, err := u.sessionService.Refresh(ctx, user.ID); err != nil {
		u.log.Warnf("Failed to refresh session after user update: %+v", err)
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) Deactivate(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	inactive := false
	user.IsActive = &inactive

	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to deactivate user: %+v", err)
		return err
	}

	if err := u.auditService.LogAction(tx, &actorID, entity.AuditActionUserDeactivate, entity.JSON{
		"user_id": user.ID.String(),
		"email":   user.Email,
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit user deactivation: %+v", err)
		return err
	}

	if err := u.sessionService.Invalidate(ctx, user.ID); err != nil {
		u.log.Warnf("Failed to invalidate session after deactivation: %+v", err)
	}

	return nil
}

func (u *userUsecase) Lookup(ctx context.Context, userID uuid.UUID, term string) ([]dto.UserLookupResponse, error) {
	users, err := u.lookupService.SearchUsers(ctx, userID, term)
	if err != nil {
		return nil, err
	}

	return converter.UsersToLookupResponses(users), nil
}

func (u *userUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.Password != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
			return nil, ErrWrongOldPassword
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		user.Password = string(hashedPassword)
	}

	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to update profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogAction(tx, &userID, entity.AuditActionProfileUpdate, nil); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit profile update: %+v", err)
		return nil, err
	}

	if _, err := u.sessionService.Refresh(ctx, userID); err != nil {
		u.log.Warnf("Failed to refresh session after profile update: %+v", err)
	}

	return converter.UserToResponse(user), nil
}
