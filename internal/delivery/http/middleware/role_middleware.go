package middleware

import (
	"net/http"

	"go-prescription-portal/internal/domain/entity"
	"go-prescription-portal/pkg/response"
)

// RequireRole creates a middleware that checks if the user has any of the required roles
// Role is read from context (set by AuthMiddleware from JWT claims)
func RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth, ok := GetAuthFromContext(r.Context())
			if !ok {
				response.RedirectTo(w, http.StatusUnauthorized, "Role information not found", entity.LoginPath)
				return
			}

			for _, role := range allowedRoles {
				if auth.HasRole(role) {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.RedirectTo(w, http.StatusForbidden, "Access denied", entity.LoginPath)
		})
	}
}

// RequireDoctor is a convenience middleware for doctor-only endpoints
func RequireDoctor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleDoctor)(next)
}

// RequirePatient is a convenience middleware for patient-only endpoints
func RequirePatient(next http.Handler) http.Handler {
	return RequireRole(entity.RolePatient)(next)
}
