package endpoints

import (
	"net/http"

	"school-in-go/pkg/audit"
	"school-in-go/pkg/model"
	"school-in-go/pkg/rbac"
	"school-in-go/pkg/server/middleware"
	"school-in-go/pkg/server/store"
)

// requirePermission loads the caller's stored role set and evaluates the
// requirement against it. It writes the error response itself and
// reports whether the handler may proceed. A failed user lookup is a
// deny, not an error.
func requirePermission(w http.ResponseWriter, r *http.Request, rolesStore store.RolesStore, required string) bool {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return false
	}

	roles, err := rolesStore.ListRolesForUser(identity.UserID)
	if err != nil {
		if store.IsNotFound(err) {
			auditCheck(r, identity.UserID, required, false)
			respondWithError(w, http.StatusForbidden, "Forbidden")
			return false
		}
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return false
	}

	allowed := rbac.HasPermission(model.PermissionDocs(roles), required)
	auditCheck(r, identity.UserID, required, allowed)
	if !allowed {
		respondWithError(w, http.StatusForbidden, "Forbidden")
		return false
	}
	return true
}

func auditCheck(r *http.Request, userID, required string, allowed bool) {
	audit.Log(audit.CheckEvent{
		UserID:      userID,
		ClientIP:    r.RemoteAddr,
		Requirement: required,
		Allowed:     allowed,
	})
}

// respondStoreError maps store errors onto HTTP statuses: NotFound to
// 404, anything else to 500.
func respondStoreError(w http.ResponseWriter, err error) {
	if store.IsNotFound(err) {
		respondWithError(w, http.StatusNotFound, err.Error())
		return
	}
	respondWithError(w, http.StatusInternalServerError, err.Error())
}
