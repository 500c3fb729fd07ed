package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCanceled  AppointmentStatus = "canceled"
)

// AppointmentModality represents how the appointment is delivered
type AppointmentModality string

const (
	ModalityInPerson AppointmentModality = "in_person"
	ModalityOnline   AppointmentModality = "online"
)

// Appointment represents a consultation booked by a patient with a professional
type Appointment struct {
	ID             uuid.UUID           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID      uuid.UUID           `gorm:"type:uuid;not null;index" json:"patient_id"`
	ProfessionalID uuid.UUID           `gorm:"type:uuid;not null;index" json:"professional_id"`
	Date           time.Time           `gorm:"type:date;not null" json:"date"`
	Time           string              `gorm:"type:time;not null" json:"time"`
	Status         AppointmentStatus   `gorm:"type:appointment_status;not null;default:'scheduled';index" json:"status"`
	Modality       AppointmentModality `gorm:"type:appointment_modality;not null" json:"modality"`
	CreatedAt      time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time           `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient      PatientProfile       `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Professional ProfessionalProfile  `gorm:"foreignKey:ProfessionalID" json:"professional,omitempty"`
	Record       *MedicalRecord       `gorm:"foreignKey:AppointmentID" json:"record,omitempty"`
	Session      *TelemedicineSession `gorm:"foreignKey:AppointmentID" json:"session,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsScheduled checks if the appointment is still scheduled
func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}

// BelongsToPatient checks whether the given user is the appointment's patient
func (a *Appointment) BelongsToPatient(userID uuid.UUID) bool {
	return a.PatientID == userID
}

// BelongsToProfessional checks whether the given user is the appointment's professional
func (a *Appointment) BelongsToProfessional(userID uuid.UUID) bool {
	return a.ProfessionalID == userID
}

// HasParticipant checks whether the given user is either side of the appointment
func (a *Appointment) HasParticipant(userID uuid.UUID) bool {
	return a.BelongsToPatient(userID) || a.BelongsToProfessional(userID)
}
