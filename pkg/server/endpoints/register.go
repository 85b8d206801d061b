package endpoints

import (
	"school-in-go/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterAuthEndpoints(srv)
	RegisterStatusEndpoints(srv)
	RegisterWhoamiEndpoint(srv)
	RegisterUsersEndpoints(srv)
	RegisterRolesEndpoints(srv)
	RegisterSchoolsEndpoints(srv)
	RegisterStudentsEndpoints(srv)
	RegisterTeachersEndpoints(srv)
	RegisterFeesEndpoints(srv)
	RegisterAnnouncementsEndpoints(srv)
}
