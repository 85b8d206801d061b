package endpoints

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"school-in-go/pkg/config"
	"school-in-go/pkg/model"
	"school-in-go/pkg/server"
	"school-in-go/pkg/server/store"
)

// StudentRequest is the payload for student create and update
type StudentRequest struct {
	SchoolID      string     `json:"school_id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Gender        string     `json:"gender"`
	DateOfBirth   *time.Time `json:"date_of_birth,omitempty"`
	GuardianName  string     `json:"guardian_name"`
	GuardianPhone string     `json:"guardian_phone"`
}

// RegisterStudentsEndpoints registers the student CRUD endpoints
func RegisterStudentsEndpoints(s *server.Server) {
	studentsRouter := s.Router.PathPrefix("/students").Subrouter()
	studentsRouter.Use(s.JWTAuth.Middleware)

	studentsRouter.HandleFunc("", handleCreateStudent(s.StudentsStore, s.RolesStore)).Methods("POST")
	studentsRouter.HandleFunc("", handleListStudents(s.StudentsStore, s.RolesStore)).Methods("GET")
	studentsRouter.HandleFunc("/{id}", handleShowStudent(s.StudentsStore, s.RolesStore)).Methods("GET")
	studentsRouter.HandleFunc("/{id}", handleUpdateStudent(s.StudentsStore, s.RolesStore)).Methods("PUT")
	studentsRouter.HandleFunc("/{id}", handleDeleteStudent(s.StudentsStore, s.RolesStore)).Methods("DELETE")
}

func handleCreateStudent(studentsStore store.StudentsStore, rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "students:create") {
			return
		}

		var req StudentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Malformed request body")
			return
		}
		if req.SchoolID == "" || req.FirstName == "" || req.LastName == "" {
			respondWithError(w, http.StatusBadRequest, "school_id, first_name and last_name are required")
			return
		}

		student := model.Student{
			SchoolID:      req.SchoolID,
			FirstName:     req.FirstName,
			LastName:      req.LastName,
			Gender:        req.Gender,
			DateOfBirth:   req.DateOfBirth,
			GuardianName:  req.GuardianName,
			GuardianPhone: req.GuardianPhone,
			Active:        true,
		}
		if err := studentsStore.CreateStudent(&student); err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondWithJSON(w, http.StatusCreated, student)
	}
}

func handleListStudents(studentsStore store.StudentsStore, rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "students:view") {
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
		schoolID := r.URL.Query().Get("school_id")

		students, err := studentsStore.ListStudents(schoolID, limit, offset)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondWithJSON(w, http.StatusOK, students)
	}
}

func handleShowStudent(studentsStore store.StudentsStore, rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "students:view") {
			return
		}

		student, err := studentsStore.FetchStudent(mux.Vars(r)["id"])
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, student)
	}
}

func handleUpdateStudent(studentsStore store.StudentsStore, rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "students:edit") {
			return
		}

		student, err := studentsStore.FetchStudent(mux.Vars(r)["id"])
		if err != nil {
			respondStoreError(w, err)
			return
		}

		var req StudentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Malformed request body")
			return
		}
		if req.FirstName != "" {
			student.FirstName = req.FirstName
		}
		if req.LastName != "" {
			student.LastName = req.LastName
		}
		if req.Gender != "" {
			student.Gender = req.Gender
		}
		if req.DateOfBirth != nil {
			student.DateOfBirth = req.DateOfBirth
		}
		if req.GuardianName != "" {
			student.GuardianName = req.GuardianName
		}
		if req.GuardianPhone != "" {
			student.GuardianPhone = req.GuardianPhone
		}

		if err := studentsStore.UpdateStudent(student); err != nil {
			respondStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, student)
	}
}

func handleDeleteStudent(studentsStore store.StudentsStore, rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "students:delete") {
			return
		}

		if err := studentsStore.DeleteStudent(mux.Vars(r)["id"]); err != nil {
			respondStoreError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
