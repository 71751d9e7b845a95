package http

import (
	"net/http"

	"github.com/DeepGajjar31/HealthNest/internal/delivery/http/handler"
	"github.com/DeepGajjar31/HealthNest/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	doctorHandler      *handler.DoctorHandler
	patientHandler     *handler.PatientHandler
	appointmentHandler *handler.AppointmentHandler
	userHandler        *handler.UserHandler
	auditLogHandler    *handler.AuditLogHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	userHandler *handler.UserHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		doctorHandler:      doctorHandler,
		patientHandler:     patientHandler,
		appointmentHandler: appointmentHandler,
		userHandler:        userHandler,
		auditLogHandler:    auditLogHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Doctor routes (protected)
	doctors := api.PathPrefix("/doctors").Subrouter()
	doctors.Use(r.authMiddleware.Authenticate)
	doctors.HandleFunc("", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	doctors.Handle("/profile", middleware.RequireDoctor(http.HandlerFunc(r.doctorHandler.SaveProfile))).Methods(http.MethodPost)
	doctors.HandleFunc("/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	doctors.Handle("", middleware.RequireAdmin(http.HandlerFunc(r.doctorHandler.CreateDoctor))).Methods(http.MethodPost)
	doctors.Handle("/{id}", middleware.RequireDoctor(http.HandlerFunc(r.doctorHandler.UpdateDoctor))).Methods(http.MethodPut)
	doctors.Handle("/{id}", middleware.RequireAdmin(http.HandlerFunc(r.doctorHandler.DeleteDoctor))).Methods(http.MethodDelete)
	doctors.HandleFunc("/{doctorId}/appointments", r.appointmentHandler.GetAppointmentsByDoctor).Methods(http.MethodGet)

	// Patient routes (protected)
	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.Handle("", middleware.RequireAdmin(http.HandlerFunc(r.patientHandler.GetAllPatients))).Methods(http.MethodGet)
	patients.Handle("/profile", middleware.RequirePatient(http.HandlerFunc(r.patientHandler.SaveProfile))).Methods(http.MethodPost)
	patients.HandleFunc("/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	patients.Handle("", middleware.RequireAdmin(http.HandlerFunc(r.patientHandler.CreatePatient))).Methods(http.MethodPost)
	patients.Handle("/{id}", middleware.RequirePatient(http.HandlerFunc(r.patientHandler.UpdatePatient))).Methods(http.MethodPut)
	patients.Handle("/{id}", middleware.RequireAdmin(http.HandlerFunc(r.patientHandler.DeletePatient))).Methods(http.MethodDelete)
	patients.HandleFunc("/{patientId}/appointments", r.appointmentHandler.GetAppointmentsByPatient).Methods(http.MethodGet)

	// Appointment routes (protected)
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.Handle("", middleware.RequirePatient(http.HandlerFunc(r.appointmentHandler.CreateAppointment))).Methods(http.MethodPost)
	appointments.Handle("", middleware.RequireAdmin(http.HandlerFunc(r.appointmentHandler.GetAllAppointments))).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	appointments.Handle("/{id}", middleware.RequireAdmin(http.HandlerFunc(r.appointmentHandler.DeleteAppointment))).Methods(http.MethodDelete)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Login account management (admin)
	admin.HandleFunc("/users", r.userHandler.GetAllUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.GetUser).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.UpdateUser).Methods(http.MethodPut)
	admin.HandleFunc("/users/{id}", r.userHandler.DeleteUser).Methods(http.MethodDelete)

	// Audit trail (admin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
