package http

import (
	"net/http"

	"go-prescription-portal/internal/delivery/http/handler"
	"go-prescription-portal/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	authHandler       *handler.AuthHandler
	draftHandler      *handler.PrescriptionDraftHandler
	doctorHandler     *handler.DoctorHandler
	patientHandler    *handler.PatientHandler
	medicineHandler   *handler.MedicineHandler
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
	recoverMiddleware *middleware.RecoverMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	draftHandler *handler.PrescriptionDraftHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	medicineHandler *handler.MedicineHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	recoverMiddleware *middleware.RecoverMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		authHandler:       authHandler,
		draftHandler:      draftHandler,
		doctorHandler:     doctorHandler,
		patientHandler:    patientHandler,
		medicineHandler:   medicineHandler,
		authMiddleware:    authMiddleware,
		corsMiddleware:    corsMiddleware,
		recoverMiddleware: recoverMiddleware,
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

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Doctor routes (protected - doctor only)
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)

	doctor.HandleFunc("/patients", r.doctorHandler.ListPatients).Methods(http.MethodGet)
	doctor.HandleFunc("/prescriptions", r.doctorHandler.ListPrescriptions).Methods(http.MethodGet)
	doctor.HandleFunc("/prescriptions/{id}", r.doctorHandler.GetPrescription).Methods(http.MethodGet)
	doctor.HandleFunc("/prescriptions/{id}/complete", r.doctorHandler.CompletePrescription).Methods(http.MethodPost)

	// Medicine catalog
	doctor.HandleFunc("/medicines", r.medicineHandler.Search).Methods(http.MethodGet)
	doctor.HandleFunc("/medicines/options", r.medicineHandler.Options).Methods(http.MethodGet)

	// Prescription drafts
	doctor.HandleFunc("/drafts", r.draftHandler.OpenDraft).Methods(http.MethodPost)
	doctor.HandleFunc("/drafts/{id}", r.draftHandler.GetDraft).Methods(http.MethodGet)
	doctor.HandleFunc("/drafts/{id}", r.draftHandler.UpdateDetails).Methods(http.MethodPut)
	doctor.HandleFunc("/drafts/{id}", r.draftHandler.Cancel).Methods(http.MethodDelete)
	doctor.HandleFunc("/drafts/{id}/submit", r.draftHandler.Submit).Methods(http.MethodPost)
	doctor.HandleFunc("/drafts/{id}/medicines", r.draftHandler.AddMedicine).Methods(http.MethodPost)
	doctor.HandleFunc("/drafts/{id}/medicines/blur", r.draftHandler.BlurMedicine).Methods(http.MethodPost)
	doctor.HandleFunc("/drafts/{id}/medicines/{index:[0-9]+}", r.draftHandler.UpdateMedicineField).Methods(http.MethodPatch)
	doctor.HandleFunc("/drafts/{id}/medicines/{index:[0-9]+}", r.draftHandler.RemoveMedicine).Methods(http.MethodDelete)
	doctor.HandleFunc("/drafts/{id}/medicines/{index:[0-9]+}/focus", r.draftHandler.FocusMedicine).Methods(http.MethodPost)
	doctor.HandleFunc("/drafts/{id}/medicines/{index:[0-9]+}/select", r.draftHandler.SelectSuggestion).Methods(http.MethodPost)

	// Patient routes (protected - patient only)
	patient := api.PathPrefix("/patient").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)

	patient.HandleFunc("/prescriptions", r.patientHandler.ListPrescriptions).Methods(http.MethodGet)
	patient.HandleFunc("/prescriptions/{id}", r.patientHandler.GetPrescription).Methods(http.MethodGet)

	r.router.Use(r.recoverMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
