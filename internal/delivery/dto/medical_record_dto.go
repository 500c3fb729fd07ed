package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateMedicalRecordRequest struct {
	AppointmentID uuid.UUID `json:"appointment_id" validate:"required"`
	Notes         string    `json:"notes" validate:"required"`
	Prescription  string    `json:"prescription" validate:"required"`
}

type MedicalRecordResponse struct {
	ID            uuid.UUID `json:"id"`
	AppointmentID uuid.UUID `json:"appointment_id"`
	Notes         string    `json:"notes"`
	Prescription  string    `json:"prescription"`
	RecordedAt    time.Time `json:"recorded_at"`
}
