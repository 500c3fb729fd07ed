package entity

import (
	"time"

	"github.com/google/uuid"
)

// TelemedicineSession is the video-room handle for an online appointment.
// The unique index on AppointmentID enforces at most one session per appointment.
type TelemedicineSession struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AppointmentID uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"appointment_id"`
	RoomCode      string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"room_code"`
	RoomURL       string     `gorm:"type:varchar(500);not null" json:"room_url"`
	StartedAt     time.Time  `gorm:"not null" json:"started_at"`
	EndedAt       *time.Time `json:"ended_at,omitempty"`
	Active        bool       `gorm:"not null;default:true;index" json:"active"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (TelemedicineSession) TableName() string {
	return "telemedicine_sessions"
}

// IsActive checks if the session is still joinable
func (s *TelemedicineSession) IsActive() bool {
	return s.Active
}

// End flips the session to its terminal state and stamps the end time
func (s *TelemedicineSession) End(at time.Time) {
	s.Active = false
	s.EndedAt = &at
}
