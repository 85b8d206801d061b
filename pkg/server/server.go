package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"school-in-go/pkg/server/middleware"
	"school-in-go/pkg/server/store"
	gormstore "school-in-go/pkg/server/store/gorm"
)

type Server struct {
	Router  *mux.Router
	DB      *gorm.DB
	JWTAuth *middleware.JWTAuthenticator

	UsersStore         store.UsersStore
	RolesStore         store.RolesStore
	SchoolsStore       store.SchoolsStore
	StudentsStore      store.StudentsStore
	TeachersStore      store.TeachersStore
	FeesStore          store.FeesStore
	AnnouncementsStore store.AnnouncementsStore
	HealthStore        store.HealthStore

	srv *http.Server
}

func NewServer(
	db *gorm.DB,
	jwtAuth *middleware.JWTAuthenticator,
	host string,
	port string,
) *Server {

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router:  router,
		DB:      db,
		JWTAuth: jwtAuth,

		UsersStore:         gormstore.NewUsersStore(db),
		RolesStore:         gormstore.NewRolesStore(db),
		SchoolsStore:       gormstore.NewSchoolsStore(db),
		StudentsStore:      gormstore.NewStudentsStore(db),
		TeachersStore:      gormstore.NewTeachersStore(db),
		FeesStore:          gormstore.NewFeesStore(db),
		AnnouncementsStore: gormstore.NewAnnouncementsStore(db),
		HealthStore:        gormstore.NewHealthStore(db),

		srv: srv,
	}
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}
