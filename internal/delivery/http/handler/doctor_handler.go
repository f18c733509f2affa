package handler

import (
	"net/http"

	"go-prescription-portal/internal/usecase"
	"go-prescription-portal/pkg/response"
)

// DoctorHandler serves the doctor dashboard: written prescriptions and the
// patient selector.
type DoctorHandler struct {
	historyUsecase   usecase.PrescriptionHistoryUsecase
	directoryUsecase usecase.PatientDirectoryUsecase
}

func NewDoctorHandler(historyUsecase usecase.PrescriptionHistoryUsecase, directoryUsecase usecase.PatientDirectoryUsecase) *DoctorHandler {
	return &DoctorHandler{
		historyUsecase:   historyUsecase,
		directoryUsecase: directoryUsecase,
	}
}

func (h *DoctorHandler) ListPrescriptions(w http.ResponseWriter, r *http.Request) {
	auth, ok := authFrom(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	prescriptions, err := h.historyUsecase.ListForDoctor(r.Context(), auth, query.Get("status"), query.Get("search"))
	if err != nil {
		switch err {
		case usecase.ErrRoleMismatch:
			roleMismatch(w)
		case usecase.ErrInvalidStatusFilter:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to get prescriptions")
		}
		return
	}

	response.Success(w, http.StatusOK, "Prescriptions retrieved successfully", prescriptions)
}

func (h *DoctorHandler) GetPrescription(w http.ResponseWriter, r *http.Request) {
	auth, ok := authFrom(w, r)
	if !ok {
		return
	}
	prescriptionID, ok := pathUUID(w, r, "id", "prescription ID")
	if !ok {
		return
	}

	prescription, err := h.historyUsecase.GetForDoctor(r.Context(), auth, prescriptionID)
	if err != nil {
		writePrescriptionError(w, err, "Failed to get prescription")
		return
	}

	response.Success(w, http.StatusOK, "Prescription retrieved successfully", prescription)
}

func (h *DoctorHandler) CompletePrescription(w http.ResponseWriter, r *http.Request) {
	auth, ok := authFrom(w, r)
	if !ok {
		return
	}
	prescriptionID, ok := pathUUID(w, r, "id", "prescription ID")
	if !ok {
		return
	}

	prescription, err := h.historyUsecase.Complete(r.Context(), auth, prescriptionID)
	if err != nil {
		writePrescriptionError(w, err, "Failed to complete prescription")
		return
	}

	response.Success(w, http.StatusOK, "Prescription marked as completed", prescription)
}

func (h *DoctorHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	auth, ok := authFrom(w, r)
	if !ok {
		return
	}

	patients, err := h.directoryUsecase.ListPatients(r.Context(), auth)
	if err != nil {
		if err == usecase.ErrRoleMismatch {
			roleMismatch(w)
			return
		}
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}
