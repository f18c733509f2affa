package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-prescription-portal/config"
	"go-prescription-portal/internal/domain/entity"
	"go-prescription-portal/pkg/jwt"
	"go-prescription-portal/pkg/response"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryTokens struct {
	tokens map[string]bool
	err    error
}

func (m *memoryTokens) Store(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	m.tokens[userID.String()+":"+tokenID] = true
	return nil
}

func (m *memoryTokens) Exists(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.tokens[userID.String()+":"+tokenID], nil
}

func (m *memoryTokens) Revoke(ctx context.Context, userID uuid.UUID, tokenID string) error {
	delete(m.tokens, userID.String()+":"+tokenID)
	return nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func captureAuth(seen *entity.AuthContext) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth, _ := GetAuthFromContext(r.Context())
		*seen = auth
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthenticate(t *testing.T) {
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "secret", AccessExpiry: time.Minute})
	tokens := &memoryTokens{tokens: map[string]bool{}}
	m := NewAuthMiddleware(jwtService, tokens, quietLogger())

	userID := uuid.New()
	token, tokenID, err := jwtService.GenerateAccessToken(userID, "doc@example.com", entity.RoleDoctor)
	require.NoError(t, err)
	require.NoError(t, tokens.Store(context.Background(), userID, tokenID, time.Minute))

	t.Run("valid token", func(t *testing.T) {
		var seen entity.AuthContext
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		m.Authenticate(captureAuth(&seen)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, entity.AuthContext{UserID: userID, Email: "doc@example.com", Role: entity.RoleDoctor}, seen)
	})

	t.Run("missing header redirects to login", func(t *testing.T) {
		var seen entity.AuthContext
		rec := httptest.NewRecorder()

		m.Authenticate(captureAuth(&seen)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, entity.LoginPath, decode(t, rec).Redirect)
	})

	t.Run("garbage token", func(t *testing.T) {
		var seen entity.AuthContext
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer nope")
		rec := httptest.NewRecorder()

		m.Authenticate(captureAuth(&seen)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("revoked token", func(t *testing.T) {
		other, _, err := jwtService.GenerateAccessToken(userID, "doc@example.com", entity.RoleDoctor)
		require.NoError(t, err)

		var seen entity.AuthContext
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+other)
		rec := httptest.NewRecorder()

		m.Authenticate(captureAuth(&seen)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Token has been revoked", decode(t, rec).Message)
	})

	t.Run("token store down", func(t *testing.T) {
		failing := NewAuthMiddleware(jwtService, &memoryTokens{err: errors.New("redis down")}, quietLogger())

		var seen entity.AuthContext
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		failing.Authenticate(captureAuth(&seen)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name         string
		auth         *entity.AuthContext
		wantStatus   int
		wantRedirect string
	}{
		{"doctor allowed", &entity.AuthContext{UserID: uuid.New(), Role: entity.RoleDoctor}, http.StatusNoContent, ""},
		{"patient sent to login", &entity.AuthContext{UserID: uuid.New(), Role: entity.RolePatient}, http.StatusForbidden, entity.LoginPath},
		{"no identity sent to login", nil, http.StatusUnauthorized, entity.LoginPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.auth != nil {
				req = req.WithContext(WithAuth(req.Context(), *tt.auth))
			}
			rec := httptest.NewRecorder()

			RequireDoctor(ok).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantRedirect != "" {
				assert.Equal(t, tt.wantRedirect, decode(t, rec).Redirect)
			}
		})
	}
}

func TestRecover(t *testing.T) {
	m := NewRecoverMiddleware(quietLogger())
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	rec := httptest.NewRecorder()

	m.Handle(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, decode(t, rec).Success)
}

func TestCORS_Preflight(t *testing.T) {
	m := NewCORSMiddleware("")
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })
	rec := httptest.NewRecorder()

	m.Handle(next).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, called)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}
