package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the centralized authentication table.
// Role-specific data lives in the extension tables keyed by the user's ID.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID    int       `gorm:"not null;index" json:"role_id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"full_name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role                 Role                  `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	PatientProfile       *PatientProfile       `gorm:"foreignKey:UserID" json:"patient_profile,omitempty"`
	ProfessionalProfile  *ProfessionalProfile  `gorm:"foreignKey:UserID" json:"professional_profile,omitempty"`
	AdministratorProfile *AdministratorProfile `gorm:"foreignKey:UserID" json:"administrator_profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}
