package converter

import (
	"vidaplus-api/internal/delivery/dto"
	"vidaplus-api/internal/domain/entity"
)

// SessionToResponse converts a TelemedicineSession entity to its response DTO
func SessionToResponse(session *entity.TelemedicineSession) *dto.TelemedicineSessionResponse {
	if session == nil {
		return nil
	}

	return &dto.TelemedicineSessionResponse{
		ID:            session.ID,
		AppointmentID: session.AppointmentID,
		RoomCode:      session.RoomCode,
		RoomURL:       session.RoomURL,
		StartedAt:     session.StartedAt,
		EndedAt:       session.EndedAt,
		Active:        session.Active,
	}
}
