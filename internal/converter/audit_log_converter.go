package converter

import (
	"vidaplus-api/internal/delivery/dto"
	"vidaplus-api/internal/domain/entity"
)

// AuditLogsToResponses converts a slice of AuditLog entities to response DTOs
func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, len(logs))
	for i, log := range logs {
		responses[i] = dto.AuditLogResponse{
			ID:        log.ID,
			ActorID:   log.ActorID,
			Action:    log.Action,
			Details:   log.Details,
			CreatedAt: log.CreatedAt,
		}
	}
	return responses
}
