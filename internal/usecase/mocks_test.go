package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"vidaplus-api/internal/delivery/http/middleware"
	"vidaplus-api/internal/domain/entity"
	"vidaplus-api/internal/domain/repository"
	"vidaplus-api/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Compile-time checks that the mocks satisfy the repository and service contracts
var (
	_ repository.UserRepository                 = (*MockUserRepository)(nil)
	_ repository.PatientProfileRepository       = (*MockPatientProfileRepository)(nil)
	_ repository.ProfessionalProfileRepository  = (*MockProfessionalProfileRepository)(nil)
	_ repository.AdministratorProfileRepository = (*MockAdministratorProfileRepository)(nil)
	_ repository.AppointmentRepository          = (*MockAppointmentRepository)(nil)
	_ repository.MedicalRecordRepository        = (*MockMedicalRecordRepository)(nil)
	_ repository.TelemedicineSessionRepository  = (*MockTelemedicineSessionRepository)(nil)
	_ service.AuditService                      = (*MockAuditService)(nil)
)

// newTestDB wires gorm over a sqlmock connection so the transaction
// begin/commit/rollback flow of a usecase runs against expectations while the
// repositories themselves are mocked.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// duplicateKeyError builds the unique-violation error the postgres driver
// surfaces when an insert hits the named constraint.
func duplicateKeyError(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

// authContext builds the request context the auth middleware would produce.
func authContext(userID uuid.UUID, roleID int) context.Context {
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, userID)
	return context.WithValue(ctx, middleware.RoleIDKey, roleID)
}

// MockUserRepository is a function-field mock of repository.UserRepository.
type MockUserRepository struct {
	CreateFunc                 func(db *gorm.DB, user *entity.User) error
	FindByEmailFunc            func(db *gorm.DB, email string) (*entity.User, error)
	FindByIDFunc               func(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	ExistsByEmailExcludingFunc func(db *gorm.DB, email string, excludeID uuid.UUID) (bool, error)
	UpdateFunc                 func(db *gorm.DB, user *entity.User) error
}

func (m *MockUserRepository) Create(db *gorm.DB, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, user)
	}
	return errors.New("CreateFunc not implemented in mock")
}

func (m *MockUserRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(db, email)
	}
	return nil, errors.New("FindByEmailFunc not implemented in mock")
}

func (m *MockUserRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(db, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockUserRepository) ExistsByEmailExcluding(db *gorm.DB, email string, excludeID uuid.UUID) (bool, error) {
	if m.ExistsByEmailExcludingFunc != nil {
		return m.ExistsByEmailExcludingFunc(db, email, excludeID)
	}
	return false, errors.New("ExistsByEmailExcludingFunc not implemented in mock")
}

func (m *MockUserRepository) Update(db *gorm.DB, user *entity.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(db, user)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

// MockPatientProfileRepository is a function-field mock of repository.PatientProfileRepository.
type MockPatientProfileRepository struct {
	CreateFunc       func(db *gorm.DB, profile *entity.PatientProfile) error
	FindByUserIDFunc func(db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error)
	FindAllFunc      func(db *gorm.DB) ([]entity.PatientProfile, error)
	UpdateFunc       func(db *gorm.DB, profile *entity.PatientProfile) error
}

func (m *MockPatientProfileRepository) Create(db *gorm.DB, profile *entity.PatientProfile) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, profile)
	}
	return errors.New("CreateFunc not implemented in mock")
}

func (m *MockPatientProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(db, userID)
	}
	return nil, errors.New("FindByUserIDFunc not implemented in mock")
}

func (m *MockPatientProfileRepository) FindAll(db *gorm.DB) ([]entity.PatientProfile, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(db)
	}
	return nil, errors.New("FindAllFunc not implemented in mock")
}

func (m *MockPatientProfileRepository) Update(db *gorm.DB, profile *entity.PatientProfile) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(db, profile)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

// MockProfessionalProfileRepository is a function-field mock of repository.ProfessionalProfileRepository.
type MockProfessionalProfileRepository struct {
	CreateFunc       func(db *gorm.DB, profile *entity.ProfessionalProfile) error
	FindByUserIDFunc func(db *gorm.DB, userID uuid.UUID) (*entity.ProfessionalProfile, error)
	FindAllFunc      func(db *gorm.DB) ([]entity.ProfessionalProfile, error)
	UpdateFunc       func(db *gorm.DB, profile *entity.ProfessionalProfile) error
}

func (m *MockProfessionalProfileRepository) Create(db *gorm.DB, profile *entity.ProfessionalProfile) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, profile)
	}
	return errors.New("CreateFunc not implemented in mock")
}

func (m *MockProfessionalProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.ProfessionalProfile, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(db, userID)
	}
	return nil, errors.New("FindByUserIDFunc not implemented in mock")
}

func (m *MockProfessionalProfileRepository) FindAll(db *gorm.DB) ([]entity.ProfessionalProfile, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(db)
	}
	return nil, errors.New("FindAllFunc not implemented in mock")
}

func (m *MockProfessionalProfileRepository) Update(db *gorm.DB, profile *entity.ProfessionalProfile) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(db, profile)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

// MockAdministratorProfileRepository is a function-field mock of repository.AdministratorProfileRepository.
type MockAdministratorProfileRepository struct {
	CreateFunc       func(db *gorm.DB, profile *entity.AdministratorProfile) error
	FindByUserIDFunc func(db *gorm.DB, userID uuid.UUID) (*entity.AdministratorProfile, error)
	FindAllFunc      func(db *gorm.DB) ([]entity.AdministratorProfile, error)
	UpdateFunc       func(db *gorm.DB, profile *entity.AdministratorProfile) error
}

func (m *MockAdministratorProfileRepository) Create(db *gorm.DB, profile *entity.AdministratorProfile) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, profile)
	}
	return errors.New("CreateFunc not implemented in mock")
}

func (m *MockAdministratorProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.AdministratorProfile, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(db, userID)
	}
	return nil, errors.New("FindByUserIDFunc not implemented in mock")
}

func (m *MockAdministratorProfileRepository) FindAll(db *gorm.DB) ([]entity.AdministratorProfile, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(db)
	}
	return nil, errors.New("FindAllFunc not implemented in mock")
}

func (m *MockAdministratorProfileRepository) Update(db *gorm.DB, profile *entity.AdministratorProfile) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(db, profile)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

// MockAppointmentRepository is a function-field mock of repository.AppointmentRepository.
type MockAppointmentRepository struct {
	CreateFunc          func(db *gorm.DB, appointment *entity.Appointment) error
	FindByIDFunc        func(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByPatientIDFunc func(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindAllFunc         func(db *gorm.DB) ([]entity.Appointment, error)
	UpdateFunc          func(db *gorm.DB, appointment *entity.Appointment) error
}

func (m *MockAppointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, appointment)
	}
	return errors.New("CreateFunc not implemented in mock")
}

func (m *MockAppointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(db, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockAppointmentRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	if m.FindByPatientIDFunc != nil {
		return m.FindByPatientIDFunc(db, patientID)
	}
	return nil, errors.New("FindByPatientIDFunc not implemented in mock")
}

func (m *MockAppointmentRepository) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(db)
	}
	return nil, errors.New("FindAllFunc not implemented in mock")
}

func (m *MockAppointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(db, appointment)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

// MockMedicalRecordRepository is a function-field mock of repository.MedicalRecordRepository.
type MockMedicalRecordRepository struct {
	CreateFunc              func(db *gorm.DB, record *entity.MedicalRecord) error
	FindByAppointmentIDFunc func(db *gorm.DB, appointmentID uuid.UUID) (*entity.MedicalRecord, error)
}

func (m *MockMedicalRecordRepository) Create(db *gorm.DB, record *entity.MedicalRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, record)
	}
	return errors.New("CreateFunc not implemented in mock")
}

func (m *MockMedicalRecordRepository) FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.MedicalRecord, error) {
	if m.FindByAppointmentIDFunc != nil {
		return m.FindByAppointmentIDFunc(db, appointmentID)
	}
	return nil, errors.New("FindByAppointmentIDFunc not implemented in mock")
}

// MockTelemedicineSessionRepository is a function-field mock of repository.TelemedicineSessionRepository.
type MockTelemedicineSessionRepository struct {
	CreateFunc              func(db *gorm.DB, session *entity.TelemedicineSession) error
	FindByAppointmentIDFunc func(db *gorm.DB, appointmentID uuid.UUID) (*entity.TelemedicineSession, error)
	UpdateFunc              func(db *gorm.DB, session *entity.TelemedicineSession) error
}

func (m *MockTelemedicineSessionRepository) Create(db *gorm.DB, session *entity.TelemedicineSession) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, session)
	}
	return errors.New("CreateFunc not implemented in mock")
}

func (m *MockTelemedicineSessionRepository) FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.TelemedicineSession, error) {
	if m.FindByAppointmentIDFunc != nil {
		return m.FindByAppointmentIDFunc(db, appointmentID)
	}
	return nil, errors.New("FindByAppointmentIDFunc not implemented in mock")
}

func (m *MockTelemedicineSessionRepository) Update(db *gorm.DB, session *entity.TelemedicineSession) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(db, session)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

// MockAuditService records the actions passed to it so tests can assert what
// was audited. Record succeeds unless RecordFunc overrides it.
type MockAuditService struct {
	RecordFunc func(tx *gorm.DB, actorID uuid.UUID, action string, details string) error
	Actions    []string
}

func (m *MockAuditService) Record(tx *gorm.DB, actorID uuid.UUID, action string, details string) error {
	m.Actions = append(m.Actions, action)
	if m.RecordFunc != nil {
		return m.RecordFunc(tx, actorID, action, details)
	}
	return nil
}

func (m *MockAuditService) Recordf(tx *gorm.DB, actorID uuid.UUID, action string, format string, args ...interface{}) error {
	return m.Record(tx, actorID, action, fmt.Sprintf(format, args...))
}
