package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"school-in-go/pkg/model"
	"school-in-go/pkg/server"
	"school-in-go/pkg/server/store"
)

// SchoolRequest is the payload for school create and update
type SchoolRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// RegisterSchoolsEndpoints registers the school CRUD endpoints
func RegisterSchoolsEndpoints(s *server.Server) {
	schoolsRouter := s.Router.PathPrefix("/schools").Subrouter()
	schoolsRouter.Use(s.JWTAuth.Middleware)

	schoolsRouter.HandleFunc("", handleCreateSchool(s.SchoolsStore, s.RolesStore)).Methods("POST")
	schoolsRouter.HandleFunc("", handleListSchools(s.SchoolsStore, s.RolesStore)).Methods("GET")
	schoolsRouter.HandleFunc("/{id}", handleShowSchool(s.SchoolsStore, s.RolesStore)).Methods("GET")
	schoolsRouter.HandleFunc("/{id}", handleUpdateSchool(s.SchoolsStore, s.RolesStore)).Methods("PUT")
	schoolsRouter.HandleFunc("/{id}", handleDeleteSchool(s.SchoolsStore, s.RolesStore)).Methods("DELETE")
}

func handleCreateSchool(schoolsStore store.SchoolsStore, rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "schools:create") {
			return
		}

		var req SchoolRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Malformed request body")
			return
		}
		if req.Name == "" {
			respondWithError(w, http.StatusBadRequest, "name is required")
			return
		}

		school := model.School{
			Name:    req.Name,
			Address: req.Address,
			Phone:   req.Phone,
			Active:  true,
		}
		if err := schoolsStore.CreateSchool(&school); err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondWithJSON(w, http.StatusCreated, school)
	}
}

func handleListSchools(schoolsStore store.SchoolsStore, rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "schools:view") {
			return
		}

		schools, err := schoolsStore.ListSchools()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondWithJSON(w, http.StatusOK, schools)
	}
}

func handleShowSchool(schoolsStore store.SchoolsStore, rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "schools:view") {
			return
		}

		school, err := schoolsStore.FetchSchool(mux.Vars(r)["id"])
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, school)
	}
}

func handleUpdateSchool(schoolsStore store.SchoolsStore, rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "schools:edit") {
			return
		}

		school, err := schoolsStore.FetchSchool(mux.Vars(r)["id"])
		if err != nil {
			respondStoreError(w, err)
			return
		}

		var req SchoolRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Malformed request body")
			return
		}
		if req.Name != "" {
			school.Name = req.Name
		}
		if req.Address != "" {
			school.Address = req.Address
		}
		if req.Phone != "" {
			school.Phone = req.Phone
		}

		if err := schoolsStore.UpdateSchool(school); err != nil {
			respondStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, school)
	}
}

func handleDeleteSchool(schoolsStore store.SchoolsStore, rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "schools:delete") {
			return
		}

		if err := schoolsStore.DeleteSchool(mux.Vars(r)["id"]); err != nil {
			respondStoreError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
