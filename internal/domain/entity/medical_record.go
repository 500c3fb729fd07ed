package entity

import (
	"time"

	"github.com/google/uuid"
)

// MedicalRecord holds the clinical notes produced for a single appointment.
// The unique index on AppointmentID enforces at most one record per appointment.
type MedicalRecord struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AppointmentID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"appointment_id"`
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`
	Prescription  string    `gorm:"type:text" json:"prescription,omitempty"`
	RecordedAt    time.Time `gorm:"not null" json:"recorded_at"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}
