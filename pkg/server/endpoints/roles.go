package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"school-in-go/pkg/model"
	"school-in-go/pkg/rbac"
	"school-in-go/pkg/server"
	"school-in-go/pkg/server/store"
)

// RoleRequest is the payload for role create and update. Permissions is
// kept raw so it can be parsed strictly before anything hits storage.
type RoleRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Permissions json.RawMessage `json:"permissions"`
}

// RegisterRolesEndpoints registers the role administration endpoints
func RegisterRolesEndpoints(s *server.Server) {
	rolesRouter := s.Router.PathPrefix("/roles").Subrouter()
	rolesRouter.Use(s.JWTAuth.Middleware)

	rolesRouter.HandleFunc("", handleCreateRole(s.RolesStore)).Methods("POST")
	rolesRouter.HandleFunc("", handleListRoles(s.RolesStore)).Methods("GET")
	rolesRouter.HandleFunc("/{id}", handleShowRole(s.RolesStore)).Methods("GET")
	rolesRouter.HandleFunc("/{id}", handleUpdateRole(s.RolesStore)).Methods("PUT")
	rolesRouter.HandleFunc("/{id}", handleDeleteRole(s.RolesStore)).Methods("DELETE")
	rolesRouter.HandleFunc("/{id}/users", handleListRoleUsers(s.RolesStore)).Methods("GET")
}

func handleCreateRole(rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "roles:manage") {
			return
		}

		var req RoleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Malformed request body")
			return
		}
		if req.Name == "" {
			respondWithError(w, http.StatusBadRequest, "name is required")
			return
		}

		permissions, err := rbac.ParseDocument(req.Permissions)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		role := model.Role{
			Name:        req.Name,
			Description: req.Description,
			Permissions: permissions,
			Active:      true,
		}
		if err := rolesStore.CreateRole(&role); err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondWithJSON(w, http.StatusCreated, role)
	}
}

func handleListRoles(rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "roles:view") {
			return
		}

		roles, err := rolesStore.ListRoles()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondWithJSON(w, http.StatusOK, roles)
	}
}

func handleShowRole(rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "roles:view") {
			return
		}

		role, err := rolesStore.FetchRole(mux.Vars(r)["id"])
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, role)
	}
}

func handleUpdateRole(rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "roles:manage") {
			return
		}

		role, err := rolesStore.FetchRole(mux.Vars(r)["id"])
		if err != nil {
			respondStoreError(w, err)
			return
		}

		var req RoleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Malformed request body")
			return
		}

		if req.Name != "" {
			role.Name = req.Name
		}
		if req.Description != "" {
			role.Description = req.Description
		}
		if req.Permissions != nil {
			permissions, err := rbac.ParseDocument(req.Permissions)
			if err != nil {
				respondWithError(w, http.StatusBadRequest, err.Error())
				return
			}
			role.Permissions = permissions
		}

		if err := rolesStore.UpdateRole(role); err != nil {
			respondStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, role)
	}
}

func handleDeleteRole(rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "roles:manage") {
			return
		}

		if err := rolesStore.DeleteRole(mux.Vars(r)["id"]); err != nil {
			respondStoreError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleListRoleUsers(rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "roles:view") {
			return
		}

		summaries, err := rolesStore.ListUsersForRole(mux.Vars(r)["id"])
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, summaries)
	}
}
