package http

import (
	"net/http"

	"shelternet/internal/delivery/http/handler"
	"shelternet/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router          *mux.Router
	authHandler     *handler.AuthHandler
	shelterHandler  *handler.ShelterHandler
	vetHandler      *handler.VetHandler
	visitorHandler  *handler.VisitorHandler
	animalHandler   *handler.AnimalHandler
	auditLogHandler *handler.AuditLogHandler
	authMiddleware  *middleware.AuthMiddleware
	corsMiddleware  *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	shelterHandler *handler.ShelterHandler,
	vetHandler *handler.VetHandler,
	visitorHandler *handler.VisitorHandler,
	animalHandler *handler.AnimalHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:          mux.NewRouter(),
		authHandler:     authHandler,
		shelterHandler:  shelterHandler,
		vetHandler:      vetHandler,
		visitorHandler:  visitorHandler,
		animalHandler:   animalHandler,
		auditLogHandler: auditLogHandler,
		authMiddleware:  authMiddleware,
		corsMiddleware:  corsMiddleware,
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

	// Everything below requires authentication; fine-grained access is
	// decided by the usecases against the stored role set.
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Shelter routes
	protected.Handle("/shelters", middleware.RequireAdmin(http.HandlerFunc(r.shelterHandler.GetShelters))).Methods(http.MethodGet)
	protected.HandleFunc("/shelters/{userId}", r.shelterHandler.GetShelter).Methods(http.MethodGet)
	protected.HandleFunc("/shelters/{userId}", r.shelterHandler.SaveShelter).Methods(http.MethodPost)
	protected.HandleFunc("/shelters/{userId}/animals", r.animalHandler.ListByShelter).Methods(http.MethodGet)
	protected.HandleFunc("/shelters/{userId}/animals", r.animalHandler.CreateAnimal).Methods(http.MethodPost)
	protected.HandleFunc("/shelters/{userId}/pending-visits", r.shelterHandler.ListPendingVisits).Methods(http.MethodGet)
	protected.HandleFunc("/shelters/{userId}/animals/{animalId}/accept-visit", r.shelterHandler.AcceptVisit).Methods(http.MethodPost)
	protected.HandleFunc("/shelters/{userId}/animals/{animalId}/deny-visit", r.shelterHandler.DenyVisit).Methods(http.MethodPost)

	// Vet routes
	protected.Handle("/vets", middleware.RequireAdmin(http.HandlerFunc(r.vetHandler.GetVets))).Methods(http.MethodGet)
	protected.HandleFunc("/vets/{userId}", r.vetHandler.GetVet).Methods(http.MethodGet)
	protected.HandleFunc("/vets/{userId}", r.vetHandler.SaveVet).Methods(http.MethodPost)
	protected.Handle("/vets/{userId}/assign-shelter", middleware.RequireAdmin(http.HandlerFunc(r.vetHandler.AssignShelter))).Methods(http.MethodPost)
	protected.HandleFunc("/vets/{userId}/animals", r.vetHandler.ListVetAnimals).Methods(http.MethodGet)

	// Visitor routes
	protected.Handle("/visitors", middleware.RequireAdmin(http.HandlerFunc(r.visitorHandler.GetVisitors))).Methods(http.MethodGet)
	protected.HandleFunc("/visitors/{userId}", r.visitorHandler.GetVisitor).Methods(http.MethodGet)
	protected.HandleFunc("/visitors/{userId}", r.visitorHandler.SaveVisitor).Methods(http.MethodPost)
	protected.HandleFunc("/visitors/{userId}/planned-visits", r.visitorHandler.ListPlannedVisits).Methods(http.MethodGet)
	protected.HandleFunc("/visitors/{userId}/adopted-animals", r.visitorHandler.ListAdoptedAnimals).Methods(http.MethodGet)

	// Animal routes
	protected.HandleFunc("/animals/search", r.visitorHandler.SearchAnimals).Methods(http.MethodGet)
	protected.HandleFunc("/animals/{id}", r.animalHandler.GetAnimal).Methods(http.MethodGet)
	protected.HandleFunc("/animals/{id}", r.animalHandler.UpdateAnimal).Methods(http.MethodPut)

	// Audit trail (admin)
	protected.Handle("/admin/audit-logs", middleware.RequireAdmin(http.HandlerFunc(r.auditLogHandler.GetAuditLogs))).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
