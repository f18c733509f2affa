package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-prescription-portal/internal/delivery/dto"
	"go-prescription-portal/internal/domain/entity"
	"go-prescription-portal/internal/service"
	"go-prescription-portal/internal/usecase"
	"go-prescription-portal/pkg/response"
	"go-prescription-portal/pkg/validator"

	"github.com/google/uuid"
)

type PrescriptionDraftHandler struct {
	draftUsecase usecase.PrescriptionDraftUsecase
	validator    *validator.CustomValidator
}

func NewPrescriptionDraftHandler(draftUsecase usecase.PrescriptionDraftUsecase, validator *validator.CustomValidator) *PrescriptionDraftHandler {
	return &PrescriptionDraftHandler{
		draftUsecase: draftUsecase,
		validator:    validator,
	}
}

func (h *PrescriptionDraftHandler) OpenDraft(w http.ResponseWriter, r *http.Request) {
	auth, ok := authFrom(w, r)
	if !ok {
		return
	}

	draft, err := h.draftUsecase.OpenDraft(r.Context(), auth)
	if err != nil {
		h.writeError(w, err, "Failed to open prescription draft")
		return
	}

	response.Success(w, http.StatusCreated, "Prescription draft opened", draft)
}

func (h *PrescriptionDraftHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	auth, draftID, ok := h.draftRequest(w, r)
	if !ok {
		return
	}

	draft, err := h.draftUsecase.GetDraft(r.Context(), auth, draftID)
	if err != nil {
		h.writeError(w, err, "Failed to get prescription draft")
		return
	}

	response.Success(w, http.StatusOK, "Prescription draft retrieved successfully", draft)
}

func (h *PrescriptionDraftHandler) UpdateDetails(w http.ResponseWriter, r *http.Request) {
	auth, draftID, ok := h.draftRequest(w, r)
	if !ok {
		return
	}

	var req dto.UpdateDraftDetailsRequest
	if !h.decode(w, r, &req) {
		return
	}

	draft, err := h.draftUsecase.UpdateDetails(r.Context(), auth, draftID, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update prescription draft")
		return
	}

	response.Success(w, http.StatusOK, "Prescription draft updated", draft)
}

func (h *PrescriptionDraftHandler) AddMedicine(w http.ResponseWriter, r *http.Request) {
	auth, draftID, ok := h.draftRequest(w, r)
	if !ok {
		return
	}

	draft, err := h.draftUsecase.AddMedicine(r.Context(), auth, draftID)
	if err != nil {
		h.writeError(w, err, "Failed to add medicine")
		return
	}

	response.Success(w, http.StatusOK, "Medicine row added", draft)
}

func (h *PrescriptionDraftHandler) RemoveMedicine(w http.ResponseWriter, r *http.Request) {
	auth, draftID, ok := h.draftRequest(w, r)
	if !ok {
		return
	}
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}

	draft, err := h.draftUsecase.RemoveMedicine(r.Context(), auth, draftID, index)
	if err != nil {
		h.writeError(w, err, "Failed to remove medicine")
		return
	}

	response.Success(w, http.StatusOK, "Medicine row removed", draft)
}

func (h *PrescriptionDraftHandler) UpdateMedicineField(w http.ResponseWriter, r *http.Request) {
	auth, draftID, ok := h.draftRequest(w, r)
	if !ok {
		return
	}
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}

	var req dto.UpdateMedicineFieldRequest
	if !h.decode(w, r, &req) {
		return
	}

	draft, err := h.draftUsecase.UpdateMedicineField(r.Context(), auth, draftID, index, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update medicine")
		return
	}

	response.Success(w, http.StatusOK, "Medicine updated", draft)
}

func (h *PrescriptionDraftHandler) FocusMedicine(w http.ResponseWriter, r *http.Request) {
	auth, draftID, ok := h.draftRequest(w, r)
	if !ok {
		return
	}
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}

	draft, err := h.draftUsecase.FocusMedicine(r.Context(), auth, draftID, index)
	if err != nil {
		h.writeError(w, err, "Failed to focus medicine")
		return
	}

	response.Success(w, http.StatusOK, "Medicine focused", draft)
}

func (h *PrescriptionDraftHandler) BlurMedicine(w http.ResponseWriter, r *http.Request) {
	auth, draftID, ok := h.draftRequest(w, r)
	if !ok {
		return
	}

	draft, err := h.draftUsecase.BlurMedicine(r.Context(), auth, draftID)
	if err != nil {
		h.writeError(w, err, "Failed to close suggestions")
		return
	}

	response.Success(w, http.StatusOK, "Suggestions closed", draft)
}

func (h *PrescriptionDraftHandler) SelectSuggestion(w http.ResponseWriter, r *http.Request) {
	auth, draftID, ok := h.draftRequest(w, r)
	if !ok {
		return
	}
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}

	var req dto.SelectSuggestionRequest
	if !h.decode(w, r, &req) {
		return
	}

	draft, err := h.draftUsecase.SelectSuggestion(r.Context(), auth, draftID, index, &req)
	if err != nil {
		h.writeError(w, err, "Failed to select medicine")
		return
	}

	response.Success(w, http.StatusOK, "Medicine selected", draft)
}

// Submit stores the draft. Only the first failed rule is reported.
func (h *PrescriptionDraftHandler) Submit(w http.ResponseWriter, r *http.Request) {
	auth, draftID, ok := h.draftRequest(w, r)
	if !ok {
		return
	}

	prescription, err := h.draftUsecase.Submit(r.Context(), auth, draftID)
	if err != nil {
		h.writeError(w, err, "Failed to create prescription")
		return
	}

	response.SuccessWithRedirect(w, http.StatusCreated, "Prescription created successfully!", prescription, entity.DoctorDashboardPath)
}

func (h *PrescriptionDraftHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	auth, draftID, ok := h.draftRequest(w, r)
	if !ok {
		return
	}

	if err := h.draftUsecase.Cancel(r.Context(), auth, draftID); err != nil {
		h.writeError(w, err, "Failed to cancel prescription draft")
		return
	}

	response.SuccessWithRedirect(w, http.StatusOK, "Prescription draft discarded", nil, entity.DoctorDashboardPath)
}

func (h *PrescriptionDraftHandler) draftRequest(w http.ResponseWriter, r *http.Request) (entity.AuthContext, uuid.UUID, bool) {
	auth, ok := authFrom(w, r)
	if !ok {
		return auth, uuid.Nil, false
	}
	draftID, ok := pathUUID(w, r, "id", "draft ID")
	return auth, draftID, ok
}

func (h *PrescriptionDraftHandler) decode(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}
	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return false
	}
	return true
}

func (h *PrescriptionDraftHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	var validationErr *entity.DraftValidationError
	if errors.As(err, &validationErr) {
		response.Unprocessable(w, validationErr.Message, map[string]string{"rule": string(validationErr.Rule)})
		return
	}

	switch err {
	case usecase.ErrRoleMismatch:
		roleMismatch(w)
	case usecase.ErrDraftNotFound:
		response.NotFound(w, "Prescription draft not found or expired")
	case usecase.ErrMedicineEntryNotFound:
		response.NotFound(w, "Medicine row not found")
	case usecase.ErrPatientNotFound:
		response.NotFound(w, "Patient not found")
	case usecase.ErrSuggestionNotAvailable:
		response.Error(w, http.StatusConflict, "Medicine is not among the current suggestions", nil)
	case usecase.ErrInvalidMedicineField, usecase.ErrInvalidFieldValue, usecase.ErrInvalidDateFormat:
		response.BadRequest(w, err.Error())
	case service.ErrPrescriptionCodeExhausted:
		response.Error(w, http.StatusServiceUnavailable, "Could not allocate a prescription code, please retry", nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
