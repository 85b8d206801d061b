package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"school-in-go/pkg/model"
	"school-in-go/pkg/server/middleware"
	"school-in-go/pkg/server/store"
)

func activeUser(t *testing.T, password string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &model.User{
		ID:           "user-1",
		Email:        "ada@example.com",
		Username:     "ada",
		PasswordHash: string(hash),
		Active:       true,
	}
}

func TestHandleLogin(t *testing.T) {
	jwtAuth := middleware.NewJWTAuthenticator([]byte("test-secret"), time.Minute)

	t.Run("valid credentials yield a token and role names", func(t *testing.T) {
		usersStore := NewMockUsersStore()
		rolesStore := NewMockRolesStore()
		usersStore.On("FetchUserByLogin", "ada").Return(activeUser(t, "s3cret"), nil)
		rolesStore.On("ListRolesForUser", "user-1").Return([]model.Role{
			{ID: "role-1", Name: "accountant"},
		}, nil)

		req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"login": "ada", "password": "s3cret"}`))
		recorder := httptest.NewRecorder()

		handleLogin(usersStore, rolesStore, jwtAuth)(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp LoginResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, []string{"accountant"}, resp.Roles)
		assert.Equal(t, "ada@example.com", resp.User.Email)

		claims, err := jwtAuth.ParseToken(resp.Token)
		assert.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
	})

	t.Run("wrong password gets the same response as an unknown user", func(t *testing.T) {
		usersStore := NewMockUsersStore()
		rolesStore := NewMockRolesStore()
		usersStore.On("FetchUserByLogin", "ada").Return(activeUser(t, "s3cret"), nil)
		usersStore.On("FetchUserByLogin", "nobody").Return(nil, store.NotFound("user", "nobody"))

		for _, body := range []string{
			`{"login": "ada", "password": "wrong"}`,
			`{"login": "nobody", "password": "s3cret"}`,
		} {
			req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(body))
			recorder := httptest.NewRecorder()

			handleLogin(usersStore, rolesStore, jwtAuth)(recorder, req)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.Contains(t, recorder.Body.String(), "Invalid credentials")
		}
	})

	t.Run("deactivated accounts cannot log in", func(t *testing.T) {
		usersStore := NewMockUsersStore()
		rolesStore := NewMockRolesStore()
		user := activeUser(t, "s3cret")
		user.Active = false
		usersStore.On("FetchUserByLogin", "ada").Return(user, nil)

		req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"login": "ada", "password": "s3cret"}`))
		recorder := httptest.NewRecorder()

		handleLogin(usersStore, rolesStore, jwtAuth)(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("a user with no roles can still log in", func(t *testing.T) {
		usersStore := NewMockUsersStore()
		rolesStore := NewMockRolesStore()
		usersStore.On("FetchUserByLogin", "ada").Return(activeUser(t, "s3cret"), nil)
		rolesStore.On("ListRolesForUser", "user-1").Return([]model.Role{}, nil)

		req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"login": "ada", "password": "s3cret"}`))
		recorder := httptest.NewRecorder()

		handleLogin(usersStore, rolesStore, jwtAuth)(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp LoginResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Empty(t, resp.Roles)
	})

	t.Run("missing fields are a bad request", func(t *testing.T) {
		usersStore := NewMockUsersStore()
		rolesStore := NewMockRolesStore()

		req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"login": "ada"}`))
		recorder := httptest.NewRecorder()

		handleLogin(usersStore, rolesStore, jwtAuth)(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		usersStore.AssertNotCalled(t, "FetchUserByLogin")
	})
}
