package endpoints

import (
	"net/http"

	"school-in-go/pkg/server"
	"school-in-go/pkg/server/store"
)

// StatusResponse reports process and database health
type StatusResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// RegisterStatusEndpoints registers the public /status endpoint
func RegisterStatusEndpoints(s *server.Server) {
	s.Router.HandleFunc("/status", handleStatus(s.HealthStore)).Methods("GET")
}

func handleStatus(healthStore store.HealthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := StatusResponse{Status: "ok", Database: "ok"}
		code := http.StatusOK

		if err := healthStore.Ping(); err != nil {
			resp.Status = "degraded"
			resp.Database = err.Error()
			code = http.StatusServiceUnavailable
		}

		respondWithJSON(w, code, resp)
	}
}
