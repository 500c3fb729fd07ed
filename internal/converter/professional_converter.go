package converter

import (
	"vidaplus-api/internal/delivery/dto"
	"vidaplus-api/internal/domain/entity"
)

// ProfessionalToResponse converts a ProfessionalProfile entity to ProfessionalResponse DTO
func ProfessionalToResponse(profile *entity.ProfessionalProfile) *dto.ProfessionalResponse {
	if profile == nil {
		return nil
	}

	return &dto.ProfessionalResponse{
		ID:            profile.UserID,
		FullName:      profile.User.FullName,
		Email:         profile.User.Email,
		Council:       profile.Council,
		CouncilNumber: profile.CouncilNumber,
		Specialty:     profile.Specialty,
		CreatedAt:     profile.User.CreatedAt,
		UpdatedAt:     profile.User.UpdatedAt,
	}
}

// ProfessionalsToResponses converts a slice of ProfessionalProfile entities to response DTOs
func ProfessionalsToResponses(profiles []entity.ProfessionalProfile) []dto.ProfessionalResponse {
	responses := make([]dto.ProfessionalResponse, len(profiles))
	for i := range profiles {
		responses[i] = *ProfessionalToResponse(&profiles[i])
	}
	return responses
}
