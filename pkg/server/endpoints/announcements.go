package endpoints

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/yuin/goldmark"

	"school-in-go/pkg/model"
	"school-in-go/pkg/server"
	"school-in-go/pkg/server/middleware"
	"school-in-go/pkg/server/store"
)

// AnnouncementRequest is the payload for POST /announcements
type AnnouncementRequest struct {
	SchoolID *string `json:"school_id,omitempty"`
	Title    string  `json:"title"`
	Body     string  `json:"body"`
}

// RegisterAnnouncementsEndpoints registers the announcement endpoints
func RegisterAnnouncementsEndpoints(s *server.Server) {
	router := s.Router.PathPrefix("/announcements").Subrouter()
	router.Use(s.JWTAuth.Middleware)

	router.HandleFunc("", handleCreateAnnouncement(s.AnnouncementsStore, s.RolesStore)).Methods("POST")
	router.HandleFunc("", handleListAnnouncements(s.AnnouncementsStore, s.RolesStore)).Methods("GET")
	router.HandleFunc("/{id}", handleShowAnnouncement(s.AnnouncementsStore, s.RolesStore)).Methods("GET")
	router.HandleFunc("/{id}", handleDeleteAnnouncement(s.AnnouncementsStore, s.RolesStore)).Methods("DELETE")
}

func handleCreateAnnouncement(announcementsStore store.AnnouncementsStore, rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "announcements:create") {
			return
		}

		identity, _ := middleware.GetIdentity(r.Context())

		var req AnnouncementRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Malformed request body")
			return
		}
		if req.Title == "" || req.Body == "" {
			respondWithError(w, http.StatusBadRequest, "title and body are required")
			return
		}

		announcement := model.Announcement{
			SchoolID: req.SchoolID,
			AuthorID: identity.UserID,
			Title:    req.Title,
			Body:     req.Body,
		}
		if err := announcementsStore.CreateAnnouncement(&announcement); err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondWithJSON(w, http.StatusCreated, announcement)
	}
}

func handleListAnnouncements(announcementsStore store.AnnouncementsStore, rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "announcements:view") {
			return
		}

		announcements, err := announcementsStore.ListAnnouncements(r.URL.Query().Get("school_id"))
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondWithJSON(w, http.StatusOK, announcements)
	}
}

// handleShowAnnouncement returns the announcement as JSON, or its body
// rendered from markdown to HTML when ?render=html is given.
func handleShowAnnouncement(announcementsStore store.AnnouncementsStore, rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "announcements:view") {
			return
		}

		announcement, err := announcementsStore.FetchAnnouncement(mux.Vars(r)["id"])
		if err != nil {
			respondStoreError(w, err)
			return
		}

		if r.URL.Query().Get("render") == "html" {
			var buf bytes.Buffer
			if err := goldmark.Convert([]byte(announcement.Body), &buf); err != nil {
				respondWithError(w, http.StatusInternalServerError, err.Error())
				return
			}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write(buf.Bytes())
			return
		}

		respondWithJSON(w, http.StatusOK, announcement)
	}
}

func handleDeleteAnnouncement(announcementsStore store.AnnouncementsStore, rolesStore store.RolesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePermission(w, r, rolesStore, "announcements:delete") {
			return
		}

		if err := announcementsStore.DeleteAnnouncement(mux.Vars(r)["id"]); err != nil {
			respondStoreError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
