package converter

import (
	"vidaplus-api/internal/delivery/dto"
	"vidaplus-api/internal/domain/entity"
)

// AdministratorToResponse converts an AdministratorProfile entity to AdministratorResponse DTO
func AdministratorToResponse(profile *entity.AdministratorProfile) *dto.AdministratorResponse {
	if profile == nil {
		return nil
	}

	return &dto.AdministratorResponse{
		ID:          profile.UserID,
		FullName:    profile.User.FullName,
		Email:       profile.User.Email,
		CPF:         profile.CPF,
		DateOfBirth: profile.DateOfBirth.Format("2006-01-02"),
		PhoneNumber: profile.PhoneNumber,
		Address:     profile.Address,
		CreatedAt:   profile.User.CreatedAt,
		UpdatedAt:   profile.User.UpdatedAt,
	}
}

// AdministratorsToResponses converts a slice of AdministratorProfile entities to response DTOs
func AdministratorsToResponses(profiles []entity.AdministratorProfile) []dto.AdministratorResponse {
	responses := make([]dto.AdministratorResponse, len(profiles))
	for i := range profiles {
		responses[i] = *AdministratorToResponse(&profiles[i])
	}
	return responses
}
