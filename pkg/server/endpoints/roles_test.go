package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"school-in-go/pkg/model"
	"school-in-go/pkg/server/store"
)

func TestHandleCreateRole(t *testing.T) {
	t.Run("creates a role from a well-formed permissions document", func(t *testing.T) {
		rolesStore := NewMockRolesStore()
		rolesStore.On("ListRolesForUser", adminIdentity.UserID).Return(adminRoles(), nil)
		rolesStore.On("CreateRole", mock.AnythingOfType("*model.Role")).Return(nil)

		body := `{"name": "accountant", "permissions": {"fees": {"collect": true, "view": true}}}`
		req := requestWithIdentity("POST", "/roles", body, adminIdentity)
		recorder := httptest.NewRecorder()

		handleCreateRole(rolesStore)(recorder, req)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		created := rolesStore.Calls[1].Arguments.Get(0).(*model.Role)
		assert.Equal(t, "accountant", created.Name)
		assert.True(t, created.Permissions.Allows("fees", "collect"))
		assert.False(t, created.Permissions.All)
	})

	t.Run("accepts the wildcard document", func(t *testing.T) {
		rolesStore := NewMockRolesStore()
		rolesStore.On("ListRolesForUser", adminIdentity.UserID).Return(adminRoles(), nil)
		rolesStore.On("CreateRole", mock.AnythingOfType("*model.Role")).Return(nil)

		body := `{"name": "super_admin", "permissions": {"all": true}}`
		req := requestWithIdentity("POST", "/roles", body, adminIdentity)
		recorder := httptest.NewRecorder()

		handleCreateRole(rolesStore)(recorder, req)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		created := rolesStore.Calls[1].Arguments.Get(0).(*model.Role)
		assert.True(t, created.Permissions.All)
	})

	t.Run("rejects malformed permission documents before storage", func(t *testing.T) {
		for name, body := range map[string]string{
			"non-boolean actions":    `{"name": "bad", "permissions": {"fees": "yes"}}`,
			"wildcard plus grants":   `{"name": "bad", "permissions": {"all": true, "fees": {"view": true}}}`,
			"false wildcard":         `{"name": "bad", "permissions": {"all": false}}`,
			"permissions not object": `{"name": "bad", "permissions": ["fees"]}`,
		} {
			t.Run(name, func(t *testing.T) {
				rolesStore := NewMockRolesStore()
				rolesStore.On("ListRolesForUser", adminIdentity.UserID).Return(adminRoles(), nil)

				req := requestWithIdentity("POST", "/roles", body, adminIdentity)
				recorder := httptest.NewRecorder()

				handleCreateRole(rolesStore)(recorder, req)

				assert.Equal(t, http.StatusBadRequest, recorder.Code)
				rolesStore.AssertNotCalled(t, "CreateRole")
			})
		}
	})
}

func TestHandleListRoleUsers(t *testing.T) {
	t.Run("lists member summaries without password material", func(t *testing.T) {
		rolesStore := NewMockRolesStore()
		rolesStore.On("ListRolesForUser", adminIdentity.UserID).Return(adminRoles(), nil)
		rolesStore.On("ListUsersForRole", "role-1").Return([]model.Summary{
			{ID: "user-1", Email: "ada@example.com"},
			{ID: "user-2", Email: "grace@example.com"},
		}, nil)

		req := requestWithIdentity("GET", "/roles/role-1/users", "", adminIdentity)
		req = withMuxVars(req, map[string]string{"id": "role-1"})
		recorder := httptest.NewRecorder()

		handleListRoleUsers(rolesStore)(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var summaries []model.Summary
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &summaries))
		assert.Len(t, summaries, 2)
		assert.NotContains(t, recorder.Body.String(), "password")
	})

	t.Run("unknown role yields 404", func(t *testing.T) {
		rolesStore := NewMockRolesStore()
		rolesStore.On("ListRolesForUser", adminIdentity.UserID).Return(adminRoles(), nil)
		rolesStore.On("ListUsersForRole", "missing").Return(nil, store.NotFound("role", "missing"))

		req := requestWithIdentity("GET", "/roles/missing/users", "", adminIdentity)
		req = withMuxVars(req, map[string]string{"id": "missing"})
		recorder := httptest.NewRecorder()

		handleListRoleUsers(rolesStore)(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
