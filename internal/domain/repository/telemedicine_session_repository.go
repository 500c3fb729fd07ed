package repository

import (
	"vidaplus-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TelemedicineSessionRepository interface {
	Create(db *gorm.DB, session *entity.TelemedicineSession) error
	FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.TelemedicineSession, error)
	Update(db *gorm.DB, session *entity.TelemedicineSession) error
}
