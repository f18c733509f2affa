package handler

import (
	"net/http"
	"strconv"

	"go-prescription-portal/internal/usecase"
	"go-prescription-portal/pkg/response"
)

type MedicineHandler struct {
	catalogUsecase usecase.MedicineCatalogUsecase
}

func NewMedicineHandler(catalogUsecase usecase.MedicineCatalogUsecase) *MedicineHandler {
	return &MedicineHandler{
		catalogUsecase: catalogUsecase,
	}
}

// Search matches ?q= against the medicine catalog, capped by ?limit=
func (h *MedicineHandler) Search(w http.ResponseWriter, r *http.Request) {
	auth, ok := authFrom(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	limit := 0
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.BadRequest(w, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	medicines, err := h.catalogUsecase.Search(r.Context(), auth, query.Get("q"), limit)
	if err != nil {
		if err == usecase.ErrRoleMismatch {
			roleMismatch(w)
			return
		}
		response.InternalServerError(w, "Failed to search medicines")
		return
	}

	response.Success(w, http.StatusOK, "Medicines retrieved successfully", medicines)
}

func (h *MedicineHandler) Options(w http.ResponseWriter, r *http.Request) {
	auth, ok := authFrom(w, r)
	if !ok {
		return
	}

	options, err := h.catalogUsecase.Options(r.Context(), auth)
	if err != nil {
		if err == usecase.ErrRoleMismatch {
			roleMismatch(w)
			return
		}
		response.InternalServerError(w, "Failed to get medicine options")
		return
	}

	response.Success(w, http.StatusOK, "Medicine options retrieved successfully", options)
}
