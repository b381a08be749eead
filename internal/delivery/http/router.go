package http

import (
	"net/http"

	"go-consult-intake/internal/delivery/http/handler"
	"go-consult-intake/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	formHandler         *handler.FormHandler
	consultationHandler *handler.ConsultationHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	formHandler *handler.FormHandler,
	consultationHandler *handler.ConsultationHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		formHandler:         formHandler,
		consultationHandler: consultationHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/signup", r.authHandler.Signup).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)
	authProtected.HandleFunc("/me", r.authHandler.UpdateProfile).Methods(http.MethodPut)

	// Form catalog (public, read-only)
	api.HandleFunc("/forms", r.formHandler.ListForms).Methods(http.MethodGet)
	api.HandleFunc("/forms/{id}", r.formHandler.GetForm).Methods(http.MethodGet)
	api.HandleFunc("/questions/{id}", r.formHandler.GetQuestion).Methods(http.MethodGet)

	// Consultations accept both authenticated and anonymous callers
	consultations := api.PathPrefix("/consultations").Subrouter()
	consultations.Use(r.authMiddleware.Optional)
	consultations.HandleFunc("", r.consultationHandler.StartConsultation).Methods(http.MethodPost)
	consultations.HandleFunc("/{id}", r.consultationHandler.GetConsultation).Methods(http.MethodGet)
	consultations.HandleFunc("/{id}/answers", r.consultationHandler.SubmitAnswer).Methods(http.MethodPost)
	consultations.HandleFunc("/{id}/followup-answers", r.consultationHandler.SubmitFollowupAnswer).Methods(http.MethodPost)
	consultations.HandleFunc("/{id}/submit", r.consultationHandler.SubmitConsultation).Methods(http.MethodPost)

	// Consultation history (protected)
	myConsultations := api.PathPrefix("/me").Subrouter()
	myConsultations.Use(r.authMiddleware.Authenticate)
	myConsultations.HandleFunc("/consultations", r.consultationHandler.GetMyConsultations).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Form management (admin)
	admin.HandleFunc("/forms", r.formHandler.CreateForm).Methods(http.MethodPost)
	admin.HandleFunc("/forms/{id}", r.formHandler.DeleteForm).Methods(http.MethodDelete)
	admin.HandleFunc("/forms/{id}/questions", r.formHandler.AddQuestion).Methods(http.MethodPost)
	admin.HandleFunc("/questions/{id}", r.formHandler.DeleteQuestion).Methods(http.MethodDelete)
	admin.HandleFunc("/questions/{id}/followups", r.formHandler.AddFollowup).Methods(http.MethodPost)

	// Audit trail (admin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.ListAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}/audit-logs", r.auditLogHandler.ListUserAuditLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
