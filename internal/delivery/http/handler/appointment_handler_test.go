package handler

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"vidaplus-api/internal/delivery/dto"
	"vidaplus-api/internal/usecase"
	"vidaplus-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func TestCreateAppointment_Success(t *testing.T) {
	professionalID := uuid.New()
	mock := &MockAppointmentUsecase{
		CreateAppointmentFunc: func(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
			return &dto.AppointmentResponse{
				ID:             uuid.New(),
				ProfessionalID: req.ProfessionalID,
				Date:           req.Date,
				Time:           req.Time,
				Status:         "scheduled",
				Modality:       req.Modality,
			}, nil
		},
	}
	h := NewAppointmentHandler(mock, validator.NewValidator())

	payload := fmt.Sprintf(`{"professional_id":"%s","date":"2026-09-15","time":"14:30","modality":"online"}`, professionalID)
	req := httptest.NewRequest(http.MethodPost, "/appointments", bytes.NewBufferString(payload))
	rec := httptest.NewRecorder()

	h.CreateAppointment(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateAppointment_UnknownProfessional(t *testing.T) {
	mock := &MockAppointmentUsecase{
		CreateAppointmentFunc: func(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
			return nil, usecase.ErrProfessionalNotFound
		},
	}
	h := NewAppointmentHandler(mock, validator.NewValidator())

	payload := fmt.Sprintf(`{"professional_id":"%s","date":"2026-09-15","time":"14:30","modality":"in_person"}`, uuid.New())
	req := httptest.NewRequest(http.MethodPost, "/appointments", bytes.NewBufferString(payload))
	rec := httptest.NewRecorder()

	h.CreateAppointment(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateAppointment_BadModality(t *testing.T) {
	h := NewAppointmentHandler(&MockAppointmentUsecase{}, validator.NewValidator())

	payload := fmt.Sprintf(`{"professional_id":"%s","date":"2026-09-15","time":"14:30","modality":"telepathic"}`, uuid.New())
	req := httptest.NewRequest(http.MethodPost, "/appointments", bytes.NewBufferString(payload))
	rec := httptest.NewRecorder()

	h.CreateAppointment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateAppointment_NotOwner(t *testing.T) {
	mock := &MockAppointmentUsecase{
		UpdateAppointmentFunc: func(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
			return nil, usecase.ErrNotAppointmentOwner
		},
	}
	h := NewAppointmentHandler(mock, validator.NewValidator())

	appointmentID := uuid.New().String()
	req := httptest.NewRequest(http.MethodPut, "/appointments/"+appointmentID, bytes.NewBufferString(`{"time":"09:00"}`))
	req = mux.SetURLVars(req, map[string]string{"id": appointmentID})
	rec := httptest.NewRecorder()

	h.UpdateAppointment(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateAppointment_PartialPayloadIsValid(t *testing.T) {
	var received *dto.UpdateAppointmentRequest
	mock := &MockAppointmentUsecase{
		UpdateAppointmentFunc: func(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
			received = req
			return &dto.AppointmentResponse{ID: id, Time: *req.Time}, nil
		},
	}
	h := NewAppointmentHandler(mock, validator.NewValidator())

	appointmentID := uuid.New().String()
	req := httptest.NewRequest(http.MethodPut, "/appointments/"+appointmentID, bytes.NewBufferString(`{"time":"09:00"}`))
	req = mux.SetURLVars(req, map[string]string{"id": appointmentID})
	rec := httptest.NewRecorder()

	h.UpdateAppointment(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, received.Date)
	assert.Nil(t, received.Modality)
	assert.NotNil(t, received.Time)
	assert.Equal(t, "09:00", *received.Time)
}

func TestGetAppointment_Success(t *testing.T) {
	mock := &MockAppointmentUsecase{
		GetAppointmentFunc: func(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
			return &dto.AppointmentResponse{ID: id, Status: "scheduled"}, nil
		},
	}
	h := NewAppointmentHandler(mock, validator.NewValidator())

	appointmentID := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/admin/appointments/"+appointmentID, nil)
	req = mux.SetURLVars(req, map[string]string{"id": appointmentID})
	rec := httptest.NewRecorder()

	h.GetAppointment(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetAppointment_Missing(t *testing.T) {
	mock := &MockAppointmentUsecase{
		GetAppointmentFunc: func(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
			return nil, usecase.ErrAppointmentNotFound
		},
	}
	h := NewAppointmentHandler(mock, validator.NewValidator())

	appointmentID := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/admin/appointments/"+appointmentID, nil)
	req = mux.SetURLVars(req, map[string]string{"id": appointmentID})
	rec := httptest.NewRecorder()

	h.GetAppointment(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetAppointment_BadID(t *testing.T) {
	h := NewAppointmentHandler(&MockAppointmentUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/admin/appointments/not-a-uuid", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "not-a-uuid"})
	rec := httptest.NewRecorder()

	h.GetAppointment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetMyAppointments_Success(t *testing.T) {
	mock := &MockAppointmentUsecase{
		ListMyAppointmentsFunc: func(ctx context.Context) (*dto.AppointmentListResponse, error) {
			return &dto.AppointmentListResponse{Appointments: []dto.AppointmentResponse{}, Total: 0}, nil
		},
	}
	h := NewAppointmentHandler(mock, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.GetMyAppointments(rec, httptest.NewRequest(http.MethodGet, "/appointments", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
