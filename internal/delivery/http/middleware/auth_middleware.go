package middleware

import (
	"context"
	"net/http"
	"strings"

	"go-prescription-portal/internal/domain/entity"
	"go-prescription-portal/internal/domain/repository"
	"go-prescription-portal/pkg/jwt"
	"go-prescription-portal/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	AuthContextKey contextKey = "auth_context"
	TokenIDKey     contextKey = "token_id"
)

type AuthMiddleware struct {
	jwtService *jwt.JWTService
	tokenRepo  repository.TokenRepository
	log        *logrus.Logger
}

func NewAuthMiddleware(jwtService *jwt.JWTService, tokenRepo repository.TokenRepository, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		tokenRepo:  tokenRepo,
		log:        log,
	}
}

// Authenticate resolves the bearer token into an entity.AuthContext.
// Unauthenticated callers are sent back to the login route.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.RedirectTo(w, http.StatusUnauthorized, "Authorization header is required", entity.LoginPath)
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.RedirectTo(w, http.StatusUnauthorized, "Invalid authorization header format", entity.LoginPath)
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.RedirectTo(w, http.StatusUnauthorized, "Invalid or expired token", entity.LoginPath)
			return
		}

		if claims.TokenType != jwt.AccessToken {
			response.RedirectTo(w, http.StatusUnauthorized, "Invalid token type", entity.LoginPath)
			return
		}

		// Check if token is still registered (not revoked)
		exists, err := m.tokenRepo.Exists(r.Context(), claims.UserID, claims.TokenID)
		if err != nil {
			m.log.Warnf("Failed to validate token: %+v", err)
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if !exists {
			response.RedirectTo(w, http.StatusUnauthorized, "Token has been revoked", entity.LoginPath)
			return
		}

		auth := entity.AuthContext{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   claims.Role,
		}
		ctx := context.WithValue(r.Context(), AuthContextKey, auth)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAuthFromContext extracts the caller identity from context
func GetAuthFromContext(ctx context.Context) (entity.AuthContext, bool) {
	auth, ok := ctx.Value(AuthContextKey).(entity.AuthContext)
	return auth, ok
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}

// WithAuth stores auth in ctx the way Authenticate does
func WithAuth(ctx context.Context, auth entity.AuthContext) context.Context {
	return context.WithValue(ctx, AuthContextKey, auth)
}
