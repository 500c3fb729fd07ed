package dto

import (
	"time"

	"github.com/google/uuid"
)

// UpdatePatientRequest is a partial update: nil pointer means "leave unchanged".
type UpdatePatientRequest struct {
	FullName    *string `json:"full_name" validate:"omitempty,min=2"`
	Email       *string `json:"email" validate:"omitempty,email"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,min=8,max=20"`
	Address     *string `json:"address" validate:"omitempty"`
}

type PatientResponse struct {
	ID          uuid.UUID `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	CPF         string    `json:"cpf"`
	DateOfBirth string    `json:"date_of_birth"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Address     string    `json:"address,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
