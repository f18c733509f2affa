package handler

import (
	"net/http"

	"go-prescription-portal/internal/usecase"
	"go-prescription-portal/pkg/response"
)

type PatientHandler struct {
	historyUsecase usecase.PrescriptionHistoryUsecase
}

func NewPatientHandler(historyUsecase usecase.PrescriptionHistoryUsecase) *PatientHandler {
	return &PatientHandler{
		historyUsecase: historyUsecase,
	}
}

// ListPrescriptions filters the caller's history by ?status= and ?search=
func (h *PatientHandler) ListPrescriptions(w http.ResponseWriter, r *http.Request) {
	auth, ok := authFrom(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	prescriptions, err := h.historyUsecase.ListForPatient(r.Context(), auth, query.Get("status"), query.Get("search"))
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

func (h *PatientHandler) GetPrescription(w http.ResponseWriter, r *http.Request) {
	auth, ok := authFrom(w, r)
	if !ok {
		return
	}
	prescriptionID, ok := pathUUID(w, r, "id", "prescription ID")
	if !ok {
		return
	}

	prescription, err := h.historyUsecase.GetForPatient(r.Context(), auth, prescriptionID)
	if err != nil {
		writePrescriptionError(w, err, "Failed to get prescription")
		return
	}

	response.Success(w, http.StatusOK, "Prescription retrieved successfully", prescription)
}

func writePrescriptionError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrRoleMismatch:
		roleMismatch(w)
	case usecase.ErrPrescriptionNotFound:
		response.NotFound(w, "Prescription not found")
	case usecase.ErrPrescriptionNotOwned:
		response.Forbidden(w, "Prescription does not belong to you")
	case usecase.ErrPrescriptionAlreadyCompleted:
		response.Error(w, http.StatusConflict, "Prescription is already completed", nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
