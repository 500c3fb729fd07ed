package converter

import (
	"vidaplus-api/internal/delivery/dto"
	"vidaplus-api/internal/domain/entity"
)

// PatientToResponse converts a PatientProfile entity to PatientResponse DTO
func PatientToResponse(profile *entity.PatientProfile) *dto.PatientResponse {
	if profile == nil {
		return nil
	}

	return &dto.PatientResponse{
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

// PatientsToResponses converts a slice of PatientProfile entities to response DTOs
func PatientsToResponses(profiles []entity.PatientProfile) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(profiles))
	for i := range profiles {
		responses[i] = *PatientToResponse(&profiles[i])
	}
	return responses
}
