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
	"gorm.io/gorm"
)

var (
	ErrNotAppointmentProfessional = errors.New("appointment is not assigned to you")
	ErrNotAppointmentParticipant  = errors.New("appointment does not involve you")
	ErrRecordAlreadyExists        = errors.New("medical record already exists for this appointment")
	ErrNoRecordYet                = errors.New("no medical record for this appointment yet")
)

type MedicalRecordUsecase interface {
	CreateMedicalRecord(ctx context.Context, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	GetMedicalRecord(ctx context.Context, appointmentID uuid.UUID) (*dto.MedicalRecordResponse, error)
}

type medicalRecordUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	recordRepo      repository.MedicalRecordRepository
	auditService    service.AuditService
}

func NewMedicalRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	recordRepo repository.MedicalRecordRepository,
	auditService service.AuditService,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		recordRepo:      recordRepo,
		auditService:    auditService,
	}
}

// CreateMedicalRecord writes the clinical notes for an appointment. Only the
// professional the appointment is assigned to may write, and each appointment
// gets at most one record; the unique index backs the check under concurrency.
func (u *medicalRecordUsecase) CreateMedicalRecord(ctx context.Context, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	professionalID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", req.AppointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if !appointment.BelongsToProfessional(professionalID) {
		return nil, ErrNotAppointmentProfessional
	}

	existing, err := u.recordRepo.FindByAppointmentID(tx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to check existing record for appointment %s: %+v", req.AppointmentID, err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrRecordAlreadyExists
	}

	record := &entity.MedicalRecord{
		AppointmentID: req.AppointmentID,
		Notes:         req.Notes,
		Prescription:  req.Prescription,
		RecordedAt:    time.Now(),
	}

	if err := u.recordRepo.Create(tx, record); err != nil {
		if isDuplicateKeyError(err, "appointment_id") {
			return nil, ErrRecordAlreadyExists
		}
		u.log.Warnf("Failed to create medical record: %+v", err)
		return nil, err
	}

	if err := u.auditService.Recordf(tx, professionalID, entity.AuditActionCreateMedicalRecord, "Medical record created for appointment %s", req.AppointmentID); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedicalRecordToResponse(record), nil
}

// GetMedicalRecord returns the record for an appointment to its patient or its
// professional. A valid appointment with no record yet yields ErrNoRecordYet
// rather than a not-found.
func (u *medicalRecordUsecase) GetMedicalRecord(ctx context.Context, appointmentID uuid.UUID) (*dto.MedicalRecordResponse, error) {
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

	record, err := u.recordRepo.FindByAppointmentID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find medical record for appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrNoRecordYet
	}

	return converter.MedicalRecordToResponse(record), nil
}
