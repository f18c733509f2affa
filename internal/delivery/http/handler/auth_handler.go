package handler

import (
	"encoding/json"
	"net/http"

	"go-prescription-portal/internal/delivery/dto"
	"go-prescription-portal/internal/delivery/http/middleware"
	"go-prescription-portal/internal/domain/entity"
	"go-prescription-portal/internal/usecase"
	"go-prescription-portal/pkg/response"
	"go-prescription-portal/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// Login handles role login
// @Summary Login user
// @Description Login with email and the role the account was registered with
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCredentials:
			response.Error(w, http.StatusUnauthorized, "Invalid email or role", nil)
		case usecase.ErrRoleNotFound:
			response.Error(w, http.StatusBadRequest, "Role not found", nil)
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	response.SuccessWithRedirect(w, http.StatusOK, "Login successful", tokens, entity.DashboardPath(tokens.Role))
}

// Logout handles user logout
// @Summary Logout user
// @Description Logout and revoke the access token
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth, ok := authFrom(w, r)
	if !ok {
		return
	}
	tokenID, ok := middleware.GetTokenIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	if err := h.authUsecase.Logout(r.Context(), auth, tokenID); err != nil {
		response.InternalServerError(w, "Failed to logout")
		return
	}

	response.SuccessWithRedirect(w, http.StatusOK, "Logout successful", nil, entity.LoginPath)
}

// GetCurrentUser handles getting current user info
// @Summary Get current user
// @Description Get authenticated user information
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	auth, ok := authFrom(w, r)
	if !ok {
		return
	}

	user, err := h.authUsecase.GetCurrentUser(r.Context(), auth)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to get user info")
		}
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", user)
}
