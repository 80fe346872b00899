package http

import (
	"net/http"

	"clinic-admin/internal/access"
	"clinic-admin/internal/delivery/http/handler"
	"clinic-admin/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	userHandler          *handler.UserHandler
	patientHandler       *handler.PatientHandler
	medicalRecordHandler *handler.MedicalRecordHandler
	transferHandler      *handler.TransferHandler
	staticDataHandler    *handler.StaticDataHandler
	auditLogHandler      *handler.AuditLogHandler
	pageHandler          *handler.PageHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
	routeGuard           *middleware.RouteGuard
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	patientHandler *handler.PatientHandler,
	medicalRecordHandler *handler.MedicalRecordHandler,
	transferHandler *handler.TransferHandler,
	staticDataHandler *handler.StaticDataHandler,
	auditLogHandler *handler.AuditLogHandler,
	pageHandler *handler.PageHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	routeGuard *middleware.RouteGuard,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		userHandler:          userHandler,
		patientHandler:       patientHandler,
		medicalRecordHandler: medicalRecordHandler,
		transferHandler:      transferHandler,
		staticDataHandler:    staticDataHandler,
		auditLogHandler:      auditLogHandler,
		pageHandler:          pageHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
		routeGuard:           routeGuard,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Admin-area API routes (any authenticated role; per-endpoint role
	// restrictions below)
	protected := api.PathPrefix("/admin").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Patients
	protected.HandleFunc("/patients", r.patientHandler.ListPatients).Methods(http.MethodGet)
	protected.HandleFunc("/patients/export", r.patientHandler.ExportPatients).Methods(http.MethodGet)
	protected.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	protected.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)

	// Medical records (mutations restricted to admins and doctors)
	protected.HandleFunc("/medical-records", r.medicalRecordHandler.ListMedicalRecords).Methods(http.MethodGet)
	protected.HandleFunc("/medical-records/export", r.medicalRecordHandler.ExportMedicalRecords).Methods(http.MethodGet)
	protected.Handle("/medical-records",
		middleware.RequireAdminOrDoctor(http.HandlerFunc(r.medicalRecordHandler.CreateMedicalRecord))).Methods(http.MethodPost)
	protected.HandleFunc("/medical-records/{id}", r.medicalRecordHandler.GetMedicalRecord).Methods(http.MethodGet)
	protected.Handle("/medical-records/{id}",
		middleware.RequireAdminOrDoctor(http.HandlerFunc(r.medicalRecordHandler.UpdateMedicalRecord))).Methods(http.MethodPut)

	// Transfers
	protected.HandleFunc("/transfers", r.transferHandler.ListTransfers).Methods(http.MethodGet)
	protected.HandleFunc("/transfers", r.transferHandler.CreateTransfer).Methods(http.MethodPost)
	protected.HandleFunc("/transfers/{id}", r.transferHandler.GetTransfer).Methods(http.MethodGet)
	protected.HandleFunc("/transfers/{id}/accept", r.transferHandler.AcceptTransfer).Methods(http.MethodPost)
	protected.HandleFunc("/transfers/{id}/reject", r.transferHandler.RejectTransfer).Methods(http.MethodPost)
	protected.HandleFunc("/transfers/{id}/cancel", r.transferHandler.CancelTransfer).Methods(http.MethodPost)

	// Recipient picker and own profile
	protected.HandleFunc("/users/lookup", r.userHandler.LookupUsers).Methods(http.MethodGet)
	protected.HandleFunc("/profile", r.authHandler.GetCurrentUser).Methods(http.MethodGet)
	protected.HandleFunc("/profile", r.userHandler.UpdateProfile).Methods(http.MethodPut)

	// Reference data for form dropdowns
	protected.HandleFunc("/static-data/{category}", r.staticDataHandler.GetCategory).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// User management (admin)
	admin.HandleFunc("/users", r.userHandler.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users", r.userHandler.CreateUser).Methods(http.MethodPost)
	admin.HandleFunc("/users/{id}", r.userHandler.GetUser).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.UpdateUser).Methods(http.MethodPut)
	admin.HandleFunc("/users/{id}", r.userHandler.DeactivateUser).Methods(http.MethodDelete)

	// Patient deletion (admin)
	admin.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	// Medical record deletion (admin)
	admin.HandleFunc("/medical-records/{id}", r.medicalRecordHandler.DeleteMedicalRecord).Methods(http.MethodDelete)

	// Static data management (admin)
	admin.HandleFunc("/static-data", r.staticDataHandler.ListStaticData).Methods(http.MethodGet)
	admin.HandleFunc("/static-data/export", r.staticDataHandler.ExportStaticData).Methods(http.MethodGet)
	admin.HandleFunc("/static-data", r.staticDataHandler.CreateStaticData).Methods(http.MethodPost)
	admin.HandleFunc("/static-data/{id:[0-9]+}", r.staticDataHandler.UpdateStaticData).Methods(http.MethodPut)
	admin.HandleFunc("/static-data/{id:[0-9]+}", r.staticDataHandler.DeleteStaticData).Methods(http.MethodDelete)

	// Audit logs (admin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.ListAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id:[0-9]+}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Page routes: every navigable path goes through the route guard, which
	// redirects instead of returning API errors.
	pages := r.router.PathPrefix("").Subrouter()
	pages.Use(r.routeGuard.Guard)
	pages.HandleFunc(access.PathLogin, r.pageHandler.ShowPage).Methods(http.MethodGet)
	pages.PathPrefix("/admin/").HandlerFunc(r.pageHandler.ShowPage).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
