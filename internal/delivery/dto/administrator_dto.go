package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterAdministratorRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	FullName    string `json:"full_name" validate:"required,min=2"`
	CPF         string `json:"cpf" validate:"required,min=11,max=14"`
	DateOfBirth string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=8,max=20"`
	Address     string `json:"address" validate:"omitempty"`
}

// UpdateAdministratorRequest is a partial update: nil pointer means "leave unchanged".
type UpdateAdministratorRequest struct {
	FullName    *string `json:"full_name" validate:"omitempty,min=2"`
	Email       *string `json:"email" validate:"omitempty,email"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,min=8,max=20"`
	Address     *string `json:"address" validate:"omitempty"`
}

type AdministratorResponse struct {
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

type AdministratorListResponse struct {
	Administrators []AdministratorResponse `json:"administrators"`
	Total          int                     `json:"total"`
}
