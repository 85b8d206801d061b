package endpoints

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"

	"school-in-go/pkg/model"
	"school-in-go/pkg/server/middleware"
)

// requestWithIdentity builds a request carrying an authenticated identity,
// bypassing the JWT middleware the way the real handlers see it.
func requestWithIdentity(method, target, body string, identity middleware.Identity) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	return req.WithContext(middleware.WithIdentity(req.Context(), identity))
}

func withMuxVars(req *http.Request, vars map[string]string) *http.Request {
	return mux.SetURLVars(req, vars)
}

// MockUsersStore is a testify mock of store.UsersStore
type MockUsersStore struct {
	mock.Mock
}

func NewMockUsersStore() *MockUsersStore {
	return &MockUsersStore{}
}

func (m *MockUsersStore) CreateUser(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUsersStore) FetchUser(id string) (*model.User, error) {
	args := m.Called(id)
	if user := args.Get(0); user != nil {
		return user.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUsersStore) FetchUserByLogin(login string) (*model.User, error) {
	args := m.Called(login)
	if user := args.Get(0); user != nil {
		return user.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUsersStore) ListUsers(limit, offset int) ([]model.User, error) {
	args := m.Called(limit, offset)
	if users := args.Get(0); users != nil {
		return users.([]model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUsersStore) UpdateUser(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUsersStore) DeleteUser(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockRolesStore is a testify mock of store.RolesStore
type MockRolesStore struct {
	mock.Mock
}

func NewMockRolesStore() *MockRolesStore {
	return &MockRolesStore{}
}

func (m *MockRolesStore) CreateRole(role *model.Role) error {
	args := m.Called(role)
	return args.Error(0)
}

func (m *MockRolesStore) FetchRole(id string) (*model.Role, error) {
	args := m.Called(id)
	if role := args.Get(0); role != nil {
		return role.(*model.Role), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRolesStore) FetchRoleByName(name string) (*model.Role, error) {
	args := m.Called(name)
	if role := args.Get(0); role != nil {
		return role.(*model.Role), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRolesStore) ListRoles() ([]model.Role, error) {
	args := m.Called()
	if roles := args.Get(0); roles != nil {
		return roles.([]model.Role), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRolesStore) UpdateRole(role *model.Role) error {
	args := m.Called(role)
	return args.Error(0)
}

func (m *MockRolesStore) DeleteRole(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockRolesStore) AssignRole(userID, roleID string) ([]model.Role, error) {
	args := m.Called(userID, roleID)
	if roles := args.Get(0); roles != nil {
		return roles.([]model.Role), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRolesStore) RemoveRole(userID, roleID string) ([]model.Role, error) {
	args := m.Called(userID, roleID)
	if roles := args.Get(0); roles != nil {
		return roles.([]model.Role), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRolesStore) ListRolesForUser(userID string) ([]model.Role, error) {
	args := m.Called(userID)
	if roles := args.Get(0); roles != nil {
		return roles.([]model.Role), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRolesStore) ListUsersForRole(roleID string) ([]model.Summary, error) {
	args := m.Called(roleID)
	if summaries := args.Get(0); summaries != nil {
		return summaries.([]model.Summary), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockHealthStore is a testify mock of store.HealthStore
type MockHealthStore struct {
	mock.Mock
}

func NewMockHealthStore() *MockHealthStore {
	return &MockHealthStore{}
}

func (m *MockHealthStore) Ping() error {
	args := m.Called()
	return args.Error(0)
}
