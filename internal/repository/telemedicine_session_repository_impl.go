package repository

import (
	"errors"

	"vidaplus-api/internal/domain/entity"
	domainRepo "vidaplus-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type telemedicineSessionRepository struct{}

func NewTelemedicineSessionRepository() domainRepo.TelemedicineSessionRepository {
	return &telemedicineSessionRepository{}
}

func (r *telemedicineSessionRepository) Create(db *gorm.DB, session *entity.TelemedicineSession) error {
	return db.Create(session).Error
}

func (r *telemedicineSessionRepository) FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.TelemedicineSession, error) {
	var session entity.TelemedicineSession
	err := db.Where("appointment_id = ?", appointmentID).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *telemedicineSessionRepository) Update(db *gorm.DB, session *entity.TelemedicineSession) error {
	return db.Save(session).Error
}
