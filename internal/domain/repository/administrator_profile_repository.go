package repository

import (
	"vidaplus-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdministratorProfileRepository interface {
	Create(db *gorm.DB, profile *entity.AdministratorProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.AdministratorProfile, error)
	FindAll(db *gorm.DB) ([]entity.AdministratorProfile, error)
	Update(db *gorm.DB, profile *entity.AdministratorProfile) error
}
