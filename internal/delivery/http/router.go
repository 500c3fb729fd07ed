package http

import (
	"net/http"

	"vidaplus-api/internal/delivery/http/handler"
	"vidaplus-api/internal/delivery/http/middleware"
	"vidaplus-api/internal/domain/entity"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	patientHandler       *handler.PatientHandler
	professionalHandler  *handler.ProfessionalHandler
	administratorHandler *handler.AdministratorHandler
	appointmentHandler   *handler.AppointmentHandler
	medicalRecordHandler *handler.MedicalRecordHandler
	telemedicineHandler  *handler.TelemedicineHandler
	auditLogHandler      *handler.AuditLogHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	professionalHandler *handler.ProfessionalHandler,
	administratorHandler *handler.AdministratorHandler,
	appointmentHandler *handler.AppointmentHandler,
	medicalRecordHandler *handler.MedicalRecordHandler,
	telemedicineHandler *handler.TelemedicineHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		patientHandler:       patientHandler,
		professionalHandler:  professionalHandler,
		administratorHandler: administratorHandler,
		appointmentHandler:   appointmentHandler,
		medicalRecordHandler: medicalRecordHandler,
		telemedicineHandler:  telemedicineHandler,
		auditLogHandler:      auditLogHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/register/professional", r.authHandler.RegisterProfessional).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Admin routes (administrator only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdministrator)
	admin.HandleFunc("/administrators", r.administratorHandler.RegisterAdministrator).Methods(http.MethodPost)
	admin.HandleFunc("/administrators", r.administratorHandler.ListAdministrators).Methods(http.MethodGet)
	admin.HandleFunc("/administrators/{id}", r.administratorHandler.GetAdministrator).Methods(http.MethodGet)
	admin.HandleFunc("/administrators/{id}", r.administratorHandler.UpdateAdministrator).Methods(http.MethodPut)
	admin.HandleFunc("/appointments", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.ListAuditLogs).Methods(http.MethodGet)

	// Patient profiles: listing is admin-only, item access is self-or-admin
	// (the ownership check lives in the usecase)
	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.Handle("", middleware.RequireAdministrator(http.HandlerFunc(r.patientHandler.ListPatients))).Methods(http.MethodGet)
	patientItems := patients.NewRoute().Subrouter()
	patientItems.Use(middleware.RequireRole(entity.RoleIDAdministrator, entity.RoleIDPatient))
	patientItems.HandleFunc("/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	patientItems.HandleFunc("/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)

	// Professional directory: readable by any authenticated role, writable by
	// the professional themselves or an administrator
	professionals := api.PathPrefix("/professionals").Subrouter()
	professionals.Use(r.authMiddleware.Authenticate)
	professionals.HandleFunc("", r.professionalHandler.ListProfessionals).Methods(http.MethodGet)
	professionals.HandleFunc("/{id}", r.professionalHandler.GetProfessional).Methods(http.MethodGet)
	professionals.Handle("/{id}", middleware.RequireAdministratorOrProfessional(http.HandlerFunc(r.professionalHandler.UpdateProfessional))).Methods(http.MethodPut)

	// Appointments (patients book and manage their own)
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	patientAppointments := appointments.NewRoute().Subrouter()
	patientAppointments.Use(middleware.RequirePatient)
	patientAppointments.HandleFunc("", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	patientAppointments.HandleFunc("", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	patientAppointments.HandleFunc("/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)

	// Medical record for an appointment, readable by either participant
	appointments.Handle(
		"/{appointment_id}/medical-record",
		middleware.RequireRole(entity.RoleIDPatient, entity.RoleIDProfessional)(http.HandlerFunc(r.medicalRecordHandler.GetMedicalRecord)),
	).Methods(http.MethodGet)

	// Medical records (professionals write)
	records := api.PathPrefix("/medical-records").Subrouter()
	records.Use(r.authMiddleware.Authenticate)
	records.Use(middleware.RequireProfessional)
	records.HandleFunc("", r.medicalRecordHandler.CreateMedicalRecord).Methods(http.MethodPost)

	// Telemedicine sessions
	telemedicine := api.PathPrefix("/telemedicine").Subrouter()
	telemedicine.Use(r.authMiddleware.Authenticate)
	professionalSessions := telemedicine.NewRoute().Subrouter()
	professionalSessions.Use(middleware.RequireProfessional)
	professionalSessions.HandleFunc("/{appointment_id}/start", r.telemedicineHandler.StartSession).Methods(http.MethodPost)
	professionalSessions.HandleFunc("/{appointment_id}/end", r.telemedicineHandler.EndSession).Methods(http.MethodPost)
	telemedicine.Handle(
		"/{appointment_id}/join",
		middleware.RequireRole(entity.RoleIDPatient, entity.RoleIDProfessional)(http.HandlerFunc(r.telemedicineHandler.JoinSession)),
	).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
