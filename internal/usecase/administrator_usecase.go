package usecase

import (
	"context"
	"errors"
	"time"

	"vidaplus-api/internal/converter"
	"vidaplus-api/internal/delivery/dto"
	"vidaplus-api/internal/delivery/http/middleware"
	"vidaplus-api/internal/domain/entity"
	"vidaplus-api/internal/domain/repository"
	"vidaplus-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrAdministratorNotFound = errors.New("administrator not found")

type AdministratorUsecase interface {
	RegisterAdministrator(ctx context.Context, req *dto.RegisterAdministratorRequest) (*dto.UserResponse, error)
	ListAdministrators(ctx context.Context) (*dto.AdministratorListResponse, error)
	GetAdministrator(ctx context.Context, id uuid.UUID) (*dto.AdministratorResponse, error)
	UpdateAdministrator(ctx context.Context, id uuid.UUID, req *dto.UpdateAdministratorRequest) (*dto.AdministratorResponse, error)
}

type administratorUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	adminRepo    repository.AdministratorProfileRepository
	auditService service.AuditService
}

func NewAdministratorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	adminRepo repository.AdministratorProfileRepository,
	auditService service.AuditService,
) AdministratorUsecase {
	return &administratorUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		adminRepo:    adminRepo,
		auditService: auditService,
	}
}

// RegisterAdministrator is admin-only at the route level; the acting
// administrator is the audited actor, not the new account.
func (u *administratorUsecase) RegisterAdministrator(ctx context.Context, req *dto.RegisterAdministratorRequest) (*dto.UserResponse, error) {
	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user := &entity.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		FullName: req.FullName,
		RoleID:   entity.RoleIDAdministrator,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	profile := &entity.AdministratorProfile{
		UserID:      user.ID,
		CPF:         req.CPF,
		DateOfBirth: dob,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	}

	if err := u.adminRepo.Create(tx, profile); err != nil {
		if isDuplicateKeyError(err, "cpf") {
			return nil, ErrCPFAlreadyExists
		}
		u.log.Warnf("Failed to create administrator profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.Recordf(tx, actorID, entity.AuditActionNewAdministrator, "Administrator registered: %s", user.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *administratorUsecase) ListAdministrators(ctx context.Context) (*dto.AdministratorListResponse, error) {
	profiles, err := u.adminRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list administrators: %+v", err)
		return nil, err
	}

	return &dto.AdministratorListResponse{
		Administrators: converter.AdministratorsToResponses(profiles),
		Total:          len(profiles),
	}, nil
}

func (u *administratorUsecase) GetAdministrator(ctx context.Context, id uuid.UUID) (*dto.AdministratorResponse, error) {
	profile, err := u.adminRepo.FindByUserID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find administrator %s: %+v", id, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrAdministratorNotFound
	}

	return converter.AdministratorToResponse(profile), nil
}

// UpdateAdministrator patches only the fields present in the request. The
// route is admin-only, so any administrator may update any other.
func (u *administratorUsecase) UpdateAdministrator(ctx context.Context, id uuid.UUID, req *dto.UpdateAdministratorRequest) (*dto.AdministratorResponse, error) {
	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.adminRepo.FindByUserID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find administrator %s: %+v", id, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrAdministratorNotFound
	}

	if req.Email != nil && *req.Email != profile.User.Email {
		taken, err := u.userRepo.ExistsByEmailExcluding(tx, *req.Email, id)
		if err != nil {
			u.log.Warnf("Failed to check email uniqueness: %+v", err)
			return nil, err
		}
		if taken {
			return nil, ErrEmailTakenByUser
		}
		profile.User.Email = *req.Email
	}

	if req.FullName != nil {
		profile.User.FullName = *req.FullName
	}
	if req.PhoneNumber != nil {
		profile.PhoneNumber = *req.PhoneNumber
	}
	if req.Address != nil {
		profile.Address = *req.Address
	}

	if err := u.userRepo.Update(tx, &profile.User); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailTakenByUser
		}
		u.log.Warnf("Failed to update user %s: %+v", id, err)
		return nil, err
	}

	if err := u.adminRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update administrator profile %s: %+v", id, err)
		return nil, err
	}

	if err := u.auditService.Recordf(tx, actorID, entity.AuditActionUpdateAdministrator, "Administrator updated: %s", id); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AdministratorToResponse(profile), nil
}
