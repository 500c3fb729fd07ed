package handler

import (
	"encoding/json"
	"net/http"

	"vidaplus-api/internal/delivery/dto"
	"vidaplus-api/internal/usecase"
	"vidaplus-api/pkg/response"
	"vidaplus-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AdministratorHandler struct {
	adminUsecase usecase.AdministratorUsecase
	validator    *validator.CustomValidator
}

func NewAdministratorHandler(adminUsecase usecase.AdministratorUsecase, validator *validator.CustomValidator) *AdministratorHandler {
	return &AdministratorHandler{
		adminUsecase: adminUsecase,
		validator:    validator,
	}
}

func (h *AdministratorHandler) RegisterAdministrator(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterAdministratorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.adminUsecase.RegisterAdministrator(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Conflict(w, "Email already exists")
		case usecase.ErrCPFAlreadyExists:
			response.Conflict(w, "CPF already exists")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date of birth, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to register administrator")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Administrator registered successfully", user)
}

func (h *AdministratorHandler) ListAdministrators(w http.ResponseWriter, r *http.Request) {
	administrators, err := h.adminUsecase.ListAdministrators(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list administrators")
		return
	}

	response.Success(w, http.StatusOK, "Administrators retrieved successfully", administrators)
}

func (h *AdministratorHandler) GetAdministrator(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	adminID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid administrator ID", nil)
		return
	}

	administrator, err := h.adminUsecase.GetAdministrator(r.Context(), adminID)
	if err != nil {
		switch err {
		case usecase.ErrAdministratorNotFound:
			response.NotFound(w, "Administrator not found")
		default:
			response.InternalServerError(w, "Failed to get administrator")
		}
		return
	}

	response.Success(w, http.StatusOK, "Administrator retrieved successfully", administrator)
}

func (h *AdministratorHandler) UpdateAdministrator(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	adminID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid administrator ID", nil)
		return
	}

	var req dto.UpdateAdministratorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	administrator, err := h.adminUsecase.UpdateAdministrator(r.Context(), adminID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAdministratorNotFound:
			response.NotFound(w, "Administrator not found")
		case usecase.ErrEmailTakenByUser:
			response.Conflict(w, "Email already in use by another account")
		default:
			response.InternalServerError(w, "Failed to update administrator")
		}
		return
	}

	response.Success(w, http.StatusOK, "Administrator updated successfully", administrator)
}
