package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront/models"
	"go-storefront/session"
	"go-storefront/utils"
)

func requestWithSession(t *testing.T, current session.Session) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	ctx := context.WithValue(req.Context(), SessionContextKey, current)
	return req.WithContext(ctx)
}

func TestAuthMiddleware(t *testing.T) {
	utils.JwtKey = []byte("test-secret")

	var gotClaims *utils.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, _ = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := AuthMiddleware(next)

	t.Run("accepts a valid token", func(t *testing.T) {
		token, err := utils.GenerateJWT("user-1", "jane@example.com", models.RoleCustomer)
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, requestWithSession(t, session.Session{ID: "s1", Token: token, UserID: "user-1"}))

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, gotClaims)
		assert.Equal(t, "jane@example.com", gotClaims.Email)
		assert.Equal(t, models.RoleCustomer, gotClaims.Role)
	})

	t.Run("rejects a session without a token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, requestWithSession(t, session.Session{ID: "s1"}))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a garbage token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, requestWithSession(t, session.Session{ID: "s1", Token: "not-a-jwt"}))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAdminMiddleware(t *testing.T) {
	utils.JwtKey = []byte("test-secret")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := AuthMiddleware(AdminMiddleware(next))

	t.Run("allows admins", func(t *testing.T) {
		token, err := utils.GenerateJWT("user-1", "admin@example.com", models.RoleAdmin)
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, requestWithSession(t, session.Session{ID: "s1", Token: token}))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects customers", func(t *testing.T) {
		token, err := utils.GenerateJWT("user-2", "jane@example.com", models.RoleCustomer)
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, requestWithSession(t, session.Session{ID: "s1", Token: token}))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestSessionMiddleware(t *testing.T) {
	sessions := session.NewRegistry()

	var seenID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = SessionID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := SessionMiddleware(sessions)(next)

	// First request creates a session and sets the cookie
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cart", nil))
	require.NotEmpty(t, seenID)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, seenID, cookies[0].Value)
	firstID := seenID

	// Second request with the cookie reuses the session
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, firstID, seenID)
	assert.Empty(t, rec.Result().Cookies())
}
