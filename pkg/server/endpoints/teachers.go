package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"school-in-go/pkg/model"
	"school-in-go/pkg/server"
	"school-in-go/pkg/server/store"
)

// TeacherRequest is the payload for teacher create and update
type TeacherRequest struct {
	SchoolID  string  `json:"school_id"`
	UserID    *string `json:"user_id,omitempty"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Phone     string  `json:"phone"`
	Specialty string  `json:"specialty"`
}

// RegisterTeachersEndpoints registers the teacher CRUD endpoints
func RegisterTeachersEndpoints(s *server.Server) {
	teachersRouter := s.Router.PathPrefix("/teachers").Subrouter()
	teachersRouter.Use(s.JWTAuth.Middleware)

	teachersRouter.HandleFunc("", handleCreateTeacher(s.TeachersStore, s.RolesStore)).Methods("POST")
	teachersRouter.HandleFunc("", handleListTeachers(s.TeachersStore, s.RolesStore)).Methods("GET")
	teachersRouter.HandleFunc("/{id}", handleShowTeacher(s.TeachersStore, s.RolesStore)).Methods("GET")
	teachersRouter.HandleFunc("/{id}", handleUpdateTeacher(s.TeachersStore, s.RolesStore)).Methods("PUT")
	teachersRouter.HandleFunc("/{id}", handleDeleteTeacher(s.TeachersStore, s.RolesStore)).Methods("DELETE")
}

func handleCreateTeacher(teachersStore store.TeachersStore, rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "teachers:create") {
			return
		}

		var req TeacherRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Malformed request body")
			return
		}
		if req.SchoolID == "" || req.FirstName == "" || req.LastName == "" {
			respondWithError(w, http.StatusBadRequest, "school_id, first_name and last_name are required")
			return
		}

		teacher := model.Teacher{
			SchoolID:  req.SchoolID,
			UserID:    req.UserID,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Phone:     req.Phone,
			Specialty: req.Specialty,
		}
		if err := teachersStore.CreateTeacher(&teacher); err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondWithJSON(w, http.StatusCreated, teacher)
	}
}

func handleListTeachers(teachersStore store.TeachersStore, rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "teachers:view") {
			return
		}

		teachers, err := teachersStore.ListTeachers(r.URL.Query().Get("school_id"))
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondWithJSON(w, http.StatusOK, teachers)
	}
}

func handleShowTeacher(teachersStore store.TeachersStore, rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "teachers:view") {
			return
		}

		teacher, err := teachersStore.FetchTeacher(mux.Vars(r)["id"])
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, teacher)
	}
}

func handleUpdateTeacher(teachersStore store.TeachersStore, rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "teachers:edit") {
			return
		}

		teacher, err := teachersStore.FetchTeacher(mux.Vars(r)["id"])
		if err != nil {
			respondStoreError(w, err)
			return
		}

		var req TeacherRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Malformed request body")
			return
		}
		if req.FirstName != "" {
			teacher.FirstName = req.FirstName
		}
		if req.LastName != "" {
			teacher.LastName = req.LastName
		}
		if req.Phone != "" {
			teacher.Phone = req.Phone
		}
		if req.Specialty != "" {
			teacher.Specialty = req.Specialty
		}
		if req.UserID != nil {
			teacher.UserID = req.UserID
		}

		if err := teachersStore.UpdateTeacher(teacher); err != nil {
			respondStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, teacher)
	}
}

func handleDeleteTeacher(teachersStore store.TeachersStore, rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "teachers:delete") {
			return
		}

		if err := teachersStore.DeleteTeacher(mux.Vars(r)["id"]); err != nil {
			respondStoreError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
