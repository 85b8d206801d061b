package endpoints

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"

	"school-in-go/pkg/audit"
	"school-in-go/pkg/config"
	"school-in-go/pkg/model"
	"school-in-go/pkg/server"
	"school-in-go/pkg/server/middleware"
	"school-in-go/pkg/server/store"
)

// CreateUserRequest is the payload for POST /users
type CreateUserRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Username  string  `json:"username"`
	Password  string  `json:"password"`
	SchoolID  *string `json:"school_id,omitempty"`
}

// UpdateUserRequest is the payload for PUT /users/{id}
type UpdateUserRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	SchoolID  *string `json:"school_id,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}

// RegisterUsersEndpoints registers the user administration endpoints
func RegisterUsersEndpoints(s *server.Server) {
	usersRouter := s.Router.PathPrefix("/users").Subrouter()
	usersRouter.Use(s.JWTAuth.Middleware)

	usersRouter.HandleFunc("", handleCreateUser(s.UsersStore, s.RolesStore)).Methods("POST")
	usersRouter.HandleFunc("", handleListUsers(s.UsersStore, s.RolesStore)).Methods("GET")
	usersRouter.HandleFunc("/{id}", handleShowUser(s.UsersStore, s.RolesStore)).Methods("GET")
	usersRouter.HandleFunc("/{id}", handleUpdateUser(s.UsersStore, s.RolesStore)).Methods("PUT")
	usersRouter.HandleFunc("/{id}", handleDeleteUser(s.UsersStore, s.RolesStore)).Methods("DELETE")

	// Role assignment lives under the user it acts on.
	usersRouter.HandleFunc("/{id}/roles", handleListUserRoles(s.RolesStore)).Methods("GET")
	usersRouter.HandleFunc("/{id}/roles/{roleID}", handleAssignRole(s.RolesStore)).Methods("POST")
	usersRouter.HandleFunc("/{id}/roles/{roleID}", handleRemoveRole(s.RolesStore)).Methods("DELETE")
}

func handleCreateUser(usersStore store.UsersStore, rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "users:create") {
			return
		}

		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Malformed request body")
			return
		}
		if req.Email == "" || req.Username == "" || req.Password == "" {
			respondWithError(w, http.StatusBadRequest, "email, username and password are required")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		user := model.User{
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        req.Email,
			Username:     req.Username,
			PasswordHash: string(hash),
			SchoolID:     req.SchoolID,
			Active:       true,
		}
		if err := usersStore.CreateUser(&user); err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		respondWithJSON(w, http.StatusCreated, user)
	}
}

func handleListUsers(usersStore store.UsersStore, rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "users:view") {
			return
		}

		limit := 0
		offset := 0
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			limit, _ = strconv.Atoi(limitStr)
		}
		if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
			offset, _ = strconv.Atoi(offsetStr)
		}
		if maxLimit := config.Get().APIListLimitMax; limit <= 0 || limit > maxLimit {
			limit = maxLimit
		}

		users, err := usersStore.ListUsers(limit, offset)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondWithJSON(w, http.StatusOK, users)
	}
}

func handleShowUser(usersStore store.UsersStore, rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "users:view") {
			return
		}

		user, err := usersStore.FetchUser(mux.Vars(r)["id"])
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, user)
	}
}

func handleUpdateUser(usersStore store.UsersStore, rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "users:edit") {
			return
		}

		user, err := usersStore.FetchUser(mux.Vars(r)["id"])
		if err != nil {
			respondStoreError(w, err)
			return
		}

		var req UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Malformed request body")
			return
		}

		if req.FirstName != nil {
			user.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			user.LastName = *req.LastName
		}
		if req.Email != nil {
			user.Email = *req.Email
		}
		if req.SchoolID != nil {
			user.SchoolID = req.SchoolID
		}
		if req.Active != nil {
			user.Active = *req.Active
		}

		if err := usersStore.UpdateUser(user); err != nil {
			respondStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, user)
	}
}

func handleDeleteUser(usersStore store.UsersStore, rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "users:delete") {
			return
		}

		if err := usersStore.DeleteUser(mux.Vars(r)["id"]); err != nil {
			respondStoreError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleListUserRoles(rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "roles:view") {
			return
		}

		roles, err := rolesStore.ListRolesForUser(mux.Vars(r)["id"])
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, roles)
	}
}

func handleAssignRole(rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "roles:assign") {
			return
		}

		vars := mux.Vars(r)
		roles, err := rolesStore.AssignRole(vars["id"], vars["roleID"])
		auditRoleChange(r, vars["id"], vars["roleID"], false, err)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, roles)
	}
}

func handleRemoveRole(rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "roles:assign") {
			return
		}

		vars := mux.Vars(r)
		roles, err := rolesStore.RemoveRole(vars["id"], vars["roleID"])
		auditRoleChange(r, vars["id"], vars["roleID"], true, err)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, roles)
	}
}

func auditRoleChange(r *http.Request, userID, roleID string, removed bool, err error) {
	identity, _ := middleware.GetIdentity(r.Context())
	event := audit.RoleChangeEvent{
		ActorID:  identity.UserID,
		ClientIP: r.RemoteAddr,
		UserID:   userID,
		RoleID:   roleID,
		Removed:  removed,
		Success:  err == nil,
	}
	if err != nil {
		event.ErrorMessage = err.Error()
	}
	audit.Log(event)
}
