package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vidaplus-api/config"
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

var (
	ErrSessionAlreadyExists = errors.New("telemedicine session already exists for this appointment")
	ErrSessionNotFound      = errors.New("telemedicine session not found")
	ErrNoActiveSession      = errors.New("no active telemedicine session for this appointment")
)

type TelemedicineUsecase interface {
	StartSession(ctx context.Context, appointmentID uuid.UUID) (*dto.TelemedicineSessionResponse, error)
	JoinSession(ctx context.Context, appointmentID uuid.UUID) (*dto.JoinSessionResponse, error)
	EndSession(ctx context.Context, appointmentID uuid.UUID) (*dto.TelemedicineSessionResponse, error)
}

type telemedicineUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	cfg             config.TelemedicineConfig
	appointmentRepo repository.AppointmentRepository
	sessionRepo     repository.TelemedicineSessionRepository
	auditService    service.AuditService
}

func NewTelemedicineUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cfg config.TelemedicineConfig,
	appointmentRepo repository.AppointmentRepository,
	sessionRepo repository.TelemedicineSessionRepository,
	auditService service.AuditService,
) TelemedicineUsecase {
	return &telemedicineUsecase{
		db:              db,
		log:             log,
		cfg:             cfg,
		appointmentRepo: appointmentRepo,
		sessionRepo:     sessionRepo,
		auditService:    auditService,
	}
}

// StartSession opens the video room for an appointment. Only the assigned
// professional may start it, and an appointment gets at most one session,
// active or ended; the unique index on appointment_id backs the check.
func (u *telemedicineUsecase) StartSession(ctx context.Context, appointmentID uuid.UUID) (*dto.TelemedicineSessionResponse, error) {
	professionalID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if !appointment.BelongsToProfessional(professionalID) {
		return nil, ErrNotAppointmentProfessional
	}

	existing, err := u.sessionRepo.FindByAppointmentID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to check existing session for appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrSessionAlreadyExists
	}

	roomCode := uuid.New().String()
	session := &entity.TelemedicineSession{
		AppointmentID: appointmentID,
		RoomCode:      roomCode,
		RoomURL:       fmt.Sprintf("%s/%s", u.cfg.RoomBaseURL, roomCode),
		StartedAt:     time.Now(),
		Active:        true,
	}

	if err := u.sessionRepo.Create(tx, session); err != nil {
		if isDuplicateKeyError(err, "appointment_id") {
			return nil, ErrSessionAlreadyExists
		}
		u.log.Warnf("Failed to create telemedicine session: %+v", err)
		return nil, err
	}

	if err := u.auditService.Recordf(tx, professionalID, entity.AuditActionStartTelemedicine, "Telemedicine session started for appointment %s", appointmentID); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.SessionToResponse(session), nil
}

// JoinSession hands the room URL to either participant of the appointment
// while the session is active.
func (u *telemedicineUsecase) JoinSession(ctx context.Context, appointmentID uuid.UUID) (*dto.JoinSessionResponse, error) {
	callerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if !appointment.HasParticipant(callerID) {
		return nil, ErrNotAppointmentParticipant
	}

	session, err := u.sessionRepo.FindByAppointmentID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find session for appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if session == nil || !session.IsActive() {
		return nil, ErrNoActiveSession
	}

	return &dto.JoinSessionResponse{
		AppointmentID: appointmentID,
		RoomURL:       session.RoomURL,
	}, nil
}

// EndSession closes the room; ending an already ended session is a no-op that
// returns the session as is.
func (u *telemedicineUsecase) EndSession(ctx context.Context, appointmentID uuid.UUID) (*dto.TelemedicineSessionResponse, error) {
	professionalID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if !appointment.BelongsToProfessional(professionalID) {
		return nil, ErrNotAppointmentProfessional
	}

	session, err := u.sessionRepo.FindByAppointmentID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find session for appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	if session.IsActive() {
		session.End(time.Now())

		if err := u.sessionRepo.Update(tx, session); err != nil {
			u.log.Warnf("Failed to end session %s: %+v", session.ID, err)
			return nil, err
		}

		if err := u.auditService.Recordf(tx, professionalID, entity.AuditActionEndTelemedicine, "Telemedicine session ended for appointment %s", appointmentID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.SessionToResponse(session), nil
}
