package handler

import (
	"net/http"
	"strconv"

	"go-prescription-portal/internal/delivery/http/middleware"
	"go-prescription-portal/internal/domain/entity"
	"go-prescription-portal/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// authFrom returns the caller set by AuthMiddleware. On false the response
// has already been written.
func authFrom(w http.ResponseWriter, r *http.Request) (entity.AuthContext, bool) {
	auth, ok := middleware.GetAuthFromContext(r.Context())
	if !ok {
		response.RedirectTo(w, http.StatusUnauthorized, "Invalid token", entity.LoginPath)
		return entity.AuthContext{}, false
	}
	return auth, true
}

func pathUUID(w http.ResponseWriter, r *http.Request, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid "+label, nil)
		return uuid.Nil, false
	}
	return id, true
}

func pathIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medicine row index", nil)
		return 0, false
	}
	return index, true
}

// roleMismatch turns a caller without the required role back to the login entry point
func roleMismatch(w http.ResponseWriter) {
	response.RedirectTo(w, http.StatusForbidden, "Access denied", entity.LoginPath)
}
