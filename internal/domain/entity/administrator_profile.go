package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdministratorProfile represents administrator-specific profile data
type AdministratorProfile struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	CPF         string    `gorm:"type:varchar(14);uniqueIndex;not null" json:"cpf"`
	DateOfBirth time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	PhoneNumber string    `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	Address     string    `gorm:"type:text" json:"address,omitempty"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (AdministratorProfile) TableName() string {
	return "administrator_profiles"
}
