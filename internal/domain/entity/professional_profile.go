package entity

import "github.com/google/uuid"

// ProfessionalProfile represents health-professional-specific profile data
type ProfessionalProfile struct {
	UserID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Council       string    `gorm:"type:varchar(50);not null" json:"council"`
	CouncilNumber string    `gorm:"type:varchar(50);not null" json:"council_number"`
	Specialty     string    `gorm:"type:varchar(100);index" json:"specialty,omitempty"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:ProfessionalID" json:"appointments,omitempty"`
}

func (ProfessionalProfile) TableName() string {
	return "professional_profiles"
}
