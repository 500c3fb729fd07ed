package handler

import (
	"bytes"
	"context"
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

func TestUpdateAdministrator_Success(t *testing.T) {
	var received *dto.UpdateAdministratorRequest
	mock := &MockAdministratorUsecase{
		UpdateAdministratorFunc: func(ctx context.Context, id uuid.UUID, req *dto.UpdateAdministratorRequest) (*dto.AdministratorResponse, error) {
			received = req
			return &dto.AdministratorResponse{ID: id, FullName: *req.FullName}, nil
		},
	}
	h := NewAdministratorHandler(mock, validator.NewValidator())

	adminID := uuid.New().String()
	req := httptest.NewRequest(http.MethodPut, "/admin/administrators/"+adminID, bytes.NewBufferString(`{"full_name":"Clara Lima Santos"}`))
	req = mux.SetURLVars(req, map[string]string{"id": adminID})
	rec := httptest.NewRecorder()

	h.UpdateAdministrator(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, received.Email)
	assert.Nil(t, received.PhoneNumber)
	assert.NotNil(t, received.FullName)
}

func TestUpdateAdministrator_Missing(t *testing.T) {
	mock := &MockAdministratorUsecase{
		UpdateAdministratorFunc: func(ctx context.Context, id uuid.UUID, req *dto.UpdateAdministratorRequest) (*dto.AdministratorResponse, error) {
			return nil, usecase.ErrAdministratorNotFound
		},
	}
	h := NewAdministratorHandler(mock, validator.NewValidator())

	adminID := uuid.New().String()
	req := httptest.NewRequest(http.MethodPut, "/admin/administrators/"+adminID, bytes.NewBufferString(`{"full_name":"Clara Lima"}`))
	req = mux.SetURLVars(req, map[string]string{"id": adminID})
	rec := httptest.NewRecorder()

	h.UpdateAdministrator(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateAdministrator_EmailConflict(t *testing.T) {
	mock := &MockAdministratorUsecase{
		UpdateAdministratorFunc: func(ctx context.Context, id uuid.UUID, req *dto.UpdateAdministratorRequest) (*dto.AdministratorResponse, error) {
			return nil, usecase.ErrEmailTakenByUser
		},
	}
	h := NewAdministratorHandler(mock, validator.NewValidator())

	adminID := uuid.New().String()
	req := httptest.NewRequest(http.MethodPut, "/admin/administrators/"+adminID, bytes.NewBufferString(`{"email":"taken@vidaplus.com"}`))
	req = mux.SetURLVars(req, map[string]string{"id": adminID})
	rec := httptest.NewRecorder()

	h.UpdateAdministrator(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUpdateAdministrator_BadEmail(t *testing.T) {
	h := NewAdministratorHandler(&MockAdministratorUsecase{}, validator.NewValidator())

	adminID := uuid.New().String()
	req := httptest.NewRequest(http.MethodPut, "/admin/administrators/"+adminID, bytes.NewBufferString(`{"email":"not-an-email"}`))
	req = mux.SetURLVars(req, map[string]string{"id": adminID})
	rec := httptest.NewRecorder()

	h.UpdateAdministrator(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
