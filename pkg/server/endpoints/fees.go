package endpoints

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"school-in-go/pkg/model"
	"school-in-go/pkg/server"
	"school-in-go/pkg/server/store"
)

// FeeRequest is the payload for POST /fees
type FeeRequest struct {
	StudentID   string     `json:"student_id"`
	Description string     `json:"description"`
	AmountCents int64      `json:"amount_cents"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// RegisterFeesEndpoints registers the fee endpoints
func RegisterFeesEndpoints(s *server.Server) {
	feesRouter := s.Router.PathPrefix("/fees").Subrouter()
	feesRouter.Use(s.JWTAuth.Middleware)

	feesRouter.HandleFunc("", handleCreateFee(s.FeesStore, s.RolesStore)).Methods("POST")
	feesRouter.HandleFunc("/{id}", handleShowFee(s.FeesStore, s.RolesStore)).Methods("GET")
	feesRouter.HandleFunc("/{id}/collect", handleCollectFee(s.FeesStore, s.RolesStore)).Methods("POST")
	feesRouter.HandleFunc("/{id}", handleDeleteFee(s.FeesStore, s.RolesStore)).Methods("DELETE")

	studentFees := s.Router.PathPrefix("/students/{id}/fees").Subrouter()
	studentFees.Use(s.JWTAuth.Middleware)
	studentFees.HandleFunc("", handleListStudentFees(s.FeesStore, s.RolesStore)).Methods("GET")
}

func handleCreateFee(feesStore store.FeesStore, rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "fees:create") {
			return
		}

		var req FeeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Malformed request body")
			return
		}
		if req.StudentID == "" || req.Description == "" {
			respondWithError(w, http.StatusBadRequest, "student_id and description are required")
			return
		}
		if req.AmountCents <= 0 {
			respondWithError(w, http.StatusBadRequest, "amount_cents must be positive")
			return
		}

		fee := model.FeeRecord{
			StudentID:   req.StudentID,
			Description: req.Description,
			AmountCents: req.AmountCents,
			DueDate:     req.DueDate,
		}
		if err := feesStore.CreateFee(&fee); err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondWithJSON(w, http.StatusCreated, fee)
	}
}

func handleShowFee(feesStore store.FeesStore, rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "fees:view") {
			return
		}

		fee, err := feesStore.FetchFee(mux.Vars(r)["id"])
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, fee)
	}
}

func handleCollectFee(feesStore store.FeesStore, rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "fees:collect") {
			return
		}

		fee, err := feesStore.MarkFeePaid(mux.Vars(r)["id"])
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, fee)
	}
}

func handleDeleteFee(feesStore store.FeesStore, rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "fees:delete") {
			return
		}

		if err := feesStore.DeleteFee(mux.Vars(r)["id"]); err != nil {
			respondStoreError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleListStudentFees(feesStore store.FeesStore, rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "fees:view") {
			return
		}

		fees, err := feesStore.ListFeesForStudent(mux.Vars(r)["id"])
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondWithJSON(w, http.StatusOK, fees)
	}
}
