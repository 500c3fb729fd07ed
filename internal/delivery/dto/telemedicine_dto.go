package dto

import (
	"time"

	"github.com/google/uuid"
)

type TelemedicineSessionResponse struct {
	ID            uuid.UUID  `json:"id"`
	AppointmentID uuid.UUID  `json:"appointment_id"`
	RoomCode      string     `json:"room_code"`
	RoomURL       string     `json:"room_url"`
	StartedAt     time.Time  `json:"started_at"`
	EndedAt       *time.Time `json:"ended_at,omitempty"`
	Active        bool       `json:"active"`
}

// JoinSessionResponse returns only what a participant needs to enter the room.
type JoinSessionResponse struct {
	AppointmentID uuid.UUID `json:"appointment_id"`
	RoomURL       string    `json:"room_url"`
}
