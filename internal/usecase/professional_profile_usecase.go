package usecase

import (
	"context"
	"errors"

	"vidaplus-api/internal/converter"
	"vidaplus-api/internal/delivery/dto"
	"vidaplus-api/internal/delivery/http/middleware"
	"vidaplus-api/internal/domain/entity"
	"vidaplus-api/internal/domain/repository"
	"vidaplus-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrProfessionalNotFound = errors.New("professional not found")

type ProfessionalProfileUsecase interface {
	ListProfessionals(ctx context.Context) (*dto.ProfessionalListResponse, error)
	GetProfessional(ctx context.Context, id uuid.UUID) (*dto.ProfessionalResponse, error)
	UpdateProfessional(ctx context.Context, id uuid.UUID, req *dto.UpdateProfessionalRequest) (*dto.ProfessionalResponse, error)
}

type professionalProfileUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	professionalRepo repository.ProfessionalProfileRepository
	auditService     service.AuditService
}

func NewProfessionalProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	professionalRepo repository.ProfessionalProfileRepository,
	auditService service.AuditService,
) ProfessionalProfileUsecase {
	return &professionalProfileUsecase{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		professionalRepo: professionalRepo,
		auditService:     auditService,
	}
}

// ListProfessionals is the clinic directory; any authenticated caller may read
// it, since patients need it to book appointments.
func (u *professionalProfileUsecase) ListProfessionals(ctx context.Context) (*dto.ProfessionalListResponse, error) {
	profiles, err := u.professionalRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list professionals: %+v", err)
		return nil, err
	}

	return &dto.ProfessionalListResponse{
		Professionals: converter.ProfessionalsToResponses(profiles),
		Total:         len(profiles),
	}, nil
}

func (u *professionalProfileUsecase) GetProfessional(ctx context.Context, id uuid.UUID) (*dto.ProfessionalResponse, error) {
	profile, err := u.professionalRepo.FindByUserID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find professional %s: %+v", id, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfessionalNotFound
	}

	return converter.ProfessionalToResponse(profile), nil
}

// UpdateProfessional patches only the fields present in the request; callers
// other than administrators may only update their own profile.
func (u *professionalProfileUsecase) UpdateProfessional(ctx context.Context, id uuid.UUID, req *dto.UpdateProfessionalRequest) (*dto.ProfessionalResponse, error) {
	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	roleID, ok := middleware.GetRoleIDFromContext(ctx)
	if !ok {
		return nil, errors.New("role not found in context")
	}
	if roleID != entity.RoleIDAdministrator && actorID != id {
		return nil, ErrNotProfileOwner
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.professionalRepo.FindByUserID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find professional %s: %+v", id, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfessionalNotFound
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
	if req.Council != nil {
		profile.Council = *req.Council
	}
	if req.CouncilNumber != nil {
		profile.CouncilNumber = *req.CouncilNumber
	}
	if req.Specialty != nil {
		profile.Specialty = *req.Specialty
	}

	if err := u.userRepo.Update(tx, &profile.User); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailTakenByUser
		}
		u.log.Warnf("Failed to update user %s: %+v", id, err)
		return nil, err
	}

	if err := u.professionalRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update professional profile %s: %+v", id, err)
		return nil, err
	}

	if err := u.auditService.Recordf(tx, actorID, entity.AuditActionUpdateProfessional, "Professional updated: %s", id); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ProfessionalToResponse(profile), nil
}
