package handler

import (
	"net/http"

	"vidaplus-api/internal/usecase"
	"vidaplus-api/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type TelemedicineHandler struct {
	telemedicineUsecase usecase.TelemedicineUsecase
}

func NewTelemedicineHandler(telemedicineUsecase usecase.TelemedicineUsecase) *TelemedicineHandler {
	return &TelemedicineHandler{
		telemedicineUsecase: telemedicineUsecase,
	}
}

func (h *TelemedicineHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["appointment_id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	session, err := h.telemedicineUsecase.StartSession(r.Context(), appointmentID)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrNotAppointmentProfessional:
			response.Forbidden(w, "Appointment is not assigned to you")
		case usecase.ErrSessionAlreadyExists:
			response.Conflict(w, "Telemedicine session already exists for this appointment")
		default:
			response.InternalServerError(w, "Failed to start telemedicine session")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Telemedicine session started", session)
}

func (h *TelemedicineHandler) JoinSession(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["appointment_id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	session, err := h.telemedicineUsecase.JoinSession(r.Context(), appointmentID)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrNotAppointmentParticipant:
			response.Forbidden(w, "Appointment does not involve you")
		case usecase.ErrNoActiveSession:
			response.Error(w, http.StatusBadRequest, "No active telemedicine session for this appointment", nil)
		default:
			response.InternalServerError(w, "Failed to join telemedicine session")
		}
		return
	}

	response.Success(w, http.StatusOK, "Telemedicine session joined", session)
}

func (h *TelemedicineHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["appointment_id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	session, err := h.telemedicineUsecase.EndSession(r.Context(), appointmentID)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrNotAppointmentProfessional:
			response.Forbidden(w, "Appointment is not assigned to you")
		case usecase.ErrSessionNotFound:
			response.NotFound(w, "Telemedicine session not found")
		default:
			response.InternalServerError(w, "Failed to end telemedicine session")
		}
		return
	}

	response.Success(w, http.StatusOK, "Telemedicine session ended", session)
}
