package converter

import (
	"vidaplus-api/internal/delivery/dto"
	"vidaplus-api/internal/domain/entity"
)

// MedicalRecordToResponse converts a MedicalRecord entity to MedicalRecordResponse DTO
func MedicalRecordToResponse(record *entity.MedicalRecord) *dto.MedicalRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.MedicalRecordResponse{
		ID:            record.ID,
		AppointmentID: record.AppointmentID,
		Notes:         record.Notes,
		Prescription:  record.Prescription,
		RecordedAt:    record.RecordedAt,
	}
}
