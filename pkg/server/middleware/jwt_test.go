package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("unit-test-secret")

func protectedHandler(t *testing.T, gotIdentity *Identity) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := GetIdentity(r.Context())
		require.True(t, ok)
		*gotIdentity = identity
		w.WriteHeader(http.StatusOK)
	})
}

func TestJWTMiddleware(t *testing.T) {
	auth := NewJWTAuthenticator(testSecret, time.Hour)

	t.Run("valid token passes and carries identity", func(t *testing.T) {
		token, err := auth.IssueToken("user-1", "alice@example.org", []string{"teacher"})
		require.NoError(t, err)

		var identity Identity
		handler := auth.Middleware(protectedHandler(t, &identity))

		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user-1", identity.UserID)
		assert.Equal(t, "alice@example.org", identity.Email)
		assert.Equal(t, []string{"teacher"}, identity.Roles)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		var identity Identity
		handler := auth.Middleware(protectedHandler(t, &identity))

		req := httptest.NewRequest("GET", "/whoami", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non-bearer header is rejected", func(t *testing.T) {
		var identity Identity
		handler := auth.Middleware(protectedHandler(t, &identity))

		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		other := NewJWTAuthenticator([]byte("some-other-secret"), time.Hour)
		token, err := other.IssueToken("user-1", "alice@example.org", nil)
		require.NoError(t, err)

		var identity Identity
		handler := auth.Middleware(protectedHandler(t, &identity))

		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		expired := NewJWTAuthenticator(testSecret, -time.Minute)
		token, err := expired.IssueToken("user-1", "alice@example.org", nil)
		require.NoError(t, err)

		var identity Identity
		handler := auth.Middleware(protectedHandler(t, &identity))

		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
