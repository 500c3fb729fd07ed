package dto

import (
	"time"

	"github.com/google/uuid"
)

// UpdateProfessionalRequest is a partial update: nil pointer means "leave unchanged".
type UpdateProfessionalRequest struct {
	FullName      *string `json:"full_name" validate:"omitempty,min=2"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Council       *string `json:"council" validate:"omitempty"`
	CouncilNumber *string `json:"council_number" validate:"omitempty"`
	Specialty     *string `json:"specialty" validate:"omitempty"`
}

type ProfessionalResponse struct {
	ID            uuid.UUID `json:"id"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email"`
	Council       string    `json:"council"`
	CouncilNumber string    `json:"council_number"`
	Specialty     string    `json:"specialty,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ProfessionalListResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
	Total         int                    `json:"total"`
}
