package handler

import (
	"context"
	"errors"

	"vidaplus-api/internal/delivery/dto"
	"vidaplus-api/internal/usecase"

	"github.com/google/uuid"
)

// Compile-time checks that the mocks satisfy the usecase contracts
var (
	_ usecase.AuthUsecase          = (*MockAuthUsecase)(nil)
	_ usecase.AppointmentUsecase   = (*MockAppointmentUsecase)(nil)
	_ usecase.MedicalRecordUsecase = (*MockMedicalRecordUsecase)(nil)
	_ usecase.TelemedicineUsecase  = (*MockTelemedicineUsecase)(nil)
	_ usecase.AdministratorUsecase = (*MockAdministratorUsecase)(nil)
)

// MockAuthUsecase is a function-field mock of usecase.AuthUsecase.
type MockAuthUsecase struct {
	RegisterPatientFunc      func(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.UserResponse, error)
	RegisterProfessionalFunc func(ctx context.Context, req *dto.RegisterProfessionalRequest) (*dto.UserResponse, error)
	LoginFunc                func(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	LogoutFunc               func(ctx context.Context, accessTokenID, refreshTokenID string) error
	RefreshTokenFunc         func(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUserFunc       func(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

func (m *MockAuthUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.UserResponse, error) {
	if m.RegisterPatientFunc != nil {
		return m.RegisterPatientFunc(ctx, req)
	}
	return nil, errors.New("RegisterPatientFunc not implemented in mock")
}

func (m *MockAuthUsecase) RegisterProfessional(ctx context.Context, req *dto.RegisterProfessionalRequest) (*dto.UserResponse, error) {
	if m.RegisterProfessionalFunc != nil {
		return m.RegisterProfessionalFunc(ctx, req)
	}
	return nil, errors.New("RegisterProfessionalFunc not implemented in mock")
}

func (m *MockAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, errors.New("LoginFunc not implemented in mock")
}

func (m *MockAuthUsecase) Logout(ctx context.Context, accessTokenID, refreshTokenID string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, accessTokenID, refreshTokenID)
	}
	return errors.New("LogoutFunc not implemented in mock")
}

func (m *MockAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	if m.RefreshTokenFunc != nil {
		return m.RefreshTokenFunc(ctx, req)
	}
	return nil, errors.New("RefreshTokenFunc not implemented in mock")
}

func (m *MockAuthUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	if m.GetCurrentUserFunc != nil {
		return m.GetCurrentUserFunc(ctx, userID)
	}
	return nil, errors.New("GetCurrentUserFunc not implemented in mock")
}

// MockAppointmentUsecase is a function-field mock of usecase.AppointmentUsecase.
type MockAppointmentUsecase struct {
	CreateAppointmentFunc   func(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	ListMyAppointmentsFunc  func(ctx context.Context) (*dto.AppointmentListResponse, error)
	ListAllAppointmentsFunc func(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetAppointmentFunc      func(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	UpdateAppointmentFunc   func(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
}

func (m *MockAppointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if m.CreateAppointmentFunc != nil {
		return m.CreateAppointmentFunc(ctx, req)
	}
	return nil, errors.New("CreateAppointmentFunc not implemented in mock")
}

func (m *MockAppointmentUsecase) ListMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	if m.ListMyAppointmentsFunc != nil {
		return m.ListMyAppointmentsFunc(ctx)
	}
	return nil, errors.New("ListMyAppointmentsFunc not implemented in mock")
}

func (m *MockAppointmentUsecase) ListAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	if m.ListAllAppointmentsFunc != nil {
		return m.ListAllAppointmentsFunc(ctx)
	}
	return nil, errors.New("ListAllAppointmentsFunc not implemented in mock")
}

func (m *MockAppointmentUsecase) GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	if m.GetAppointmentFunc != nil {
		return m.GetAppointmentFunc(ctx, id)
	}
	return nil, errors.New("GetAppointmentFunc not implemented in mock")
}

func (m *MockAppointmentUsecase) UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if m.UpdateAppointmentFunc != nil {
		return m.UpdateAppointmentFunc(ctx, id, req)
	}
	return nil, errors.New("UpdateAppointmentFunc not implemented in mock")
}

// MockMedicalRecordUsecase is a function-field mock of usecase.MedicalRecordUsecase.
type MockMedicalRecordUsecase struct {
	CreateMedicalRecordFunc func(ctx context.Context, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	GetMedicalRecordFunc    func(ctx context.Context, appointmentID uuid.UUID) (*dto.MedicalRecordResponse, error)
}

func (m *MockMedicalRecordUsecase) CreateMedicalRecord(ctx context.Context, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	if m.CreateMedicalRecordFunc != nil {
		return m.CreateMedicalRecordFunc(ctx, req)
	}
	return nil, errors.New("CreateMedicalRecordFunc not implemented in mock")
}

func (m *MockMedicalRecordUsecase) GetMedicalRecord(ctx context.Context, appointmentID uuid.UUID) (*dto.MedicalRecordResponse, error) {
	if m.GetMedicalRecordFunc != nil {
		return m.GetMedicalRecordFunc(ctx, appointmentID)
	}
	return nil, errors.New("GetMedicalRecordFunc not implemented in mock")
}

// MockAdministratorUsecase is a function-field mock of usecase.AdministratorUsecase.
type MockAdministratorUsecase struct {
	RegisterAdministratorFunc func(ctx context.Context, req *dto.RegisterAdministratorRequest) (*dto.UserResponse, error)
	ListAdministratorsFunc    func(ctx context.Context) (*dto.AdministratorListResponse, error)
	GetAdministratorFunc      func(ctx context.Context, id uuid.UUID) (*dto.AdministratorResponse, error)
	UpdateAdministratorFunc   func(ctx context.Context, id uuid.UUID, req *dto.UpdateAdministratorRequest) (*dto.AdministratorResponse, error)
}

func (m *MockAdministratorUsecase) RegisterAdministrator(ctx context.Context, req *dto.RegisterAdministratorRequest) (*dto.UserResponse, error) {
	if m.RegisterAdministratorFunc != nil {
		return m.RegisterAdministratorFunc(ctx, req)
	}
	return nil, errors.New("RegisterAdministratorFunc not implemented in mock")
}

func (m *MockAdministratorUsecase) ListAdministrators(ctx context.Context) (*dto.AdministratorListResponse, error) {
	if m.ListAdministratorsFunc != nil {
		return m.ListAdministratorsFunc(ctx)
	}
	return nil, errors.New("ListAdministratorsFunc not implemented in mock")
}

func (m *MockAdministratorUsecase) GetAdministrator(ctx context.Context, id uuid.UUID) (*dto.AdministratorResponse, error) {
	if m.GetAdministratorFunc != nil {
		return m.GetAdministratorFunc(ctx, id)
	}
	return nil, errors.New("GetAdministratorFunc not implemented in mock")
}

func (m *MockAdministratorUsecase) UpdateAdministrator(ctx context.Context, id uuid.UUID, req *dto.UpdateAdministratorRequest) (*dto.AdministratorResponse, error) {
	if m.UpdateAdministratorFunc != nil {
		return m.UpdateAdministratorFunc(ctx, id, req)
	}
	return nil, errors.New("UpdateAdministratorFunc not implemented in mock")
}

// MockTelemedicineUsecase is a function-field mock of usecase.TelemedicineUsecase.
type MockTelemedicineUsecase struct {
	StartSessionFunc func(ctx context.Context, appointmentID uuid.UUID) (*dto.TelemedicineSessionResponse, error)
	JoinSessionFunc  func(ctx context.Context, appointmentID uuid.UUID) (*dto.JoinSessionResponse, error)
	EndSessionFunc   func(ctx context.Context, appointmentID uuid.UUID) (*dto.TelemedicineSessionResponse, error)
}

func (m *MockTelemedicineUsecase) StartSession(ctx context.Context, appointmentID uuid.UUID) (*dto.TelemedicineSessionResponse, error) {
	if m.StartSessionFunc != nil {
		return m.StartSessionFunc(ctx, appointmentID)
	}
	return nil, errors.New("StartSessionFunc not implemented in mock")
}

func (m *MockTelemedicineUsecase) JoinSession(ctx context.Context, appointmentID uuid.UUID) (*dto.JoinSessionResponse, error) {
	if m.JoinSessionFunc != nil {
		return m.JoinSessionFunc(ctx, appointmentID)
	}
	return nil, errors.New("JoinSessionFunc not implemented in mock")
}

func (m *MockTelemedicineUsecase) EndSession(ctx context.Context, appointmentID uuid.UUID) (*dto.TelemedicineSessionResponse, error) {
	if m.EndSessionFunc != nil {
		return m.EndSessionFunc(ctx, appointmentID)
	}
	return nil, errors.New("EndSessionFunc not implemented in mock")
}
