package endpoints

import (
	"encoding/json"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"school-in-go/pkg/audit"
	"school-in-go/pkg/model"
	"school-in-go/pkg/server"
	"school-in-go/pkg/server/middleware"
	"school-in-go/pkg/server/store"
)

// LoginRequest is the login payload; Login accepts email or username.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// LoginResponse carries the signed token and the caller's public shape.
type LoginResponse struct {
	Token string        `json:"token"`
	User  model.Summary `json:"user"`
	Roles []string      `json:"roles"`
}

// RegisterAuthEndpoints registers the public authentication endpoint
func RegisterAuthEndpoints(s *server.Server) {
	s.Router.HandleFunc("/auth/login", handleLogin(s.UsersStore, s.RolesStore, s.JWTAuth)).Methods("POST")
}

func handleLogin(usersStore store.UsersStore, rolesStore store.RolesStore, jwtAuth *middleware.JWTAuthenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Malformed request body")
			return
		}
		if req.Login == "" || req.Password == "" {
			respondWithError(w, http.StatusBadRequest, "login and password are required")
			return
		}

		user, err := usersStore.FetchUserByLogin(req.Login)
		if err != nil {
			// Same response for unknown user and bad password.
			auditLogin(r, req.Login, "", false, "unknown user")
			respondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		if !user.Active {
			auditLogin(r, req.Login, user.ID, false, "account deactivated")
			respondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
			auditLogin(r, req.Login, user.ID, false, "bad password")
			respondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		auditLogin(r, req.Login, user.ID, true, "")

		roles, err := rolesStore.ListRolesForUser(user.ID)
		if err != nil && !store.IsNotFound(err) {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		roleNames := make([]string, 0, len(roles))
		for _, role := range roles {
			roleNames = append(roleNames, role.Name)
		}

		token, err := jwtAuth.IssueToken(user.ID, user.Email, roleNames)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		respondWithJSON(w, http.StatusOK, LoginResponse{
			Token: token,
			User:  user.Summary(),
			Roles: roleNames,
		})
	}
}

func auditLogin(r *http.Request, login, userID string, success bool, reason string) {
	audit.Log(audit.LoginEvent{
		Login:        login,
		UserID:       userID,
		ClientIP:     r.RemoteAddr,
		Success:      success,
		ErrorMessage: reason,
	})
}
