package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tasklist/config"
	"tasklist/internal/domain/entity"
	"tasklist/internal/infra/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMiddleware(t *testing.T) *AuthMiddleware {
	t.Helper()

	cfg := &config.Config{
		JWT: &config.JWTConfig{
			Key:              "0123456789abcdef0123456789abcdef",
			Issuer:           "tasklist-test",
			Audience:         "tasklist-clients",
			ExpiresInMinutes: 5,
		},
	}
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return NewAuthMiddleware(tokenSvc)
}

func issueToken(t *testing.T, m *AuthMiddleware, email string, roles []string) string {
	t.Helper()

	token, err := m.tokenSvc.Generate(email, roles)
	require.NoError(t, err)

	return token
}

func runRequest(m *AuthMiddleware, token string, extra ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/todo", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	for i := len(extra) - 1; i >= 0; i-- {
		handler = extra[i](handler)
	}

	_ = m.Authenticate(handler)(c)

	return rec, c
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	m := newTestMiddleware(t)

	t.Run("accepts a valid bearer token and exposes the claims", func(t *testing.T) {
		token := issueToken(t, m, "alice@example.com", []string{entity.RoleNameAdmin})

		rec, c := runRequest(m, "Bearer "+token)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "alice@example.com", c.Get(ContextKeyUserEmail))
		assert.Equal(t, []string{entity.RoleNameAdmin}, c.Get(ContextKeyRoles))
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		rec, _ := runRequest(m, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a non-bearer header", func(t *testing.T) {
		rec, _ := runRequest(m, "Basic abc")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a forged token", func(t *testing.T) {
		rec, _ := runRequest(m, "Bearer not.a.token")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := newTestMiddleware(t)

	t.Run("allows a caller holding the role", func(t *testing.T) {
		token := issueToken(t, m, "root@example.com", []string{entity.RoleNameAdmin})

		rec, _ := runRequest(m, "Bearer "+token, m.RequireRole(entity.RoleNameAdmin))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("forbids a caller without the role", func(t *testing.T) {
		token := issueToken(t, m, "alice@example.com", []string{entity.RoleNameUser})

		rec, _ := runRequest(m, "Bearer "+token, m.RequireRole(entity.RoleNameAdmin))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
