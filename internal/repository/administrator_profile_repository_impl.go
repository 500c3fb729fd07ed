package repository

import (
	"errors"

	"vidaplus-api/internal/domain/entity"
	domainRepo "vidaplus-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type administratorProfileRepository struct{}

func NewAdministratorProfileRepository() domainRepo.AdministratorProfileRepository {
	return &administratorProfileRepository{}
}

func (r *administratorProfileRepository) Create(db *gorm.DB, profile *entity.AdministratorProfile) error {
	return db.Create(profile).Error
}

func (r *administratorProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.AdministratorProfile, error) {
	var profile entity.AdministratorProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *administratorProfileRepository) FindAll(db *gorm.DB) ([]entity.AdministratorProfile, error) {
	var profiles []entity.AdministratorProfile
	err := db.Preload("User").Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *administratorProfileRepository) Update(db *gorm.DB, profile *entity.AdministratorProfile) error {
	return db.Save(profile).Error
}
