// Package http exposes the membership application API and the admin
// dashboard endpoints over JSON/HTTP.
package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/morem6161/bcsme/internal/security"
	"github.com/morem6161/bcsme/internal/service"
)

const sessionCookie = "bcsme_session"

type Server struct {
	appSvc    service.ApplicationService
	memberSvc service.MemberService
	authSvc   service.AuthService
	tokens    security.TokenManager
	webDir    string
}

func NewServer(
	appSvc service.ApplicationService,
	memberSvc service.MemberService,
	authSvc service.AuthService,
	tokens security.TokenManager,
	webDir string,
) *Server {
	return &Server{
		appSvc:    appSvc,
		memberSvc: memberSvc,
		authSvc:   authSvc,
		tokens:    tokens,
		webDir:    webDir,
	}
}

// Router builds the route table. Admin endpoints sit behind the session
// middleware; everything under them is uniformly rejected with 401 when
// no valid session is presented.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/application/submit", s.handleSubmit).Methods(http.MethodPost)
	api.HandleFunc("/payment/confirm", s.handlePaymentConfirm).Methods(http.MethodPost)

	api.HandleFunc("/admin/login", s.handleLogin).Methods(http.MethodPost)
	api.HandleFunc("/admin/logout", s.handleLogout).Methods(http.MethodPost)
	api.HandleFunc("/admin/check", s.handleCheck).Methods(http.MethodGet)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(s.requireAuth)
	admin.HandleFunc("/applications", s.handleListApplications).Methods(http.MethodGet)
	admin.HandleFunc("/applications/pending", s.handleListPending).Methods(http.MethodGet)
	admin.HandleFunc("/applications/{id:[0-9]+}/approve", s.handleDecide).Methods(http.MethodPost)
	admin.HandleFunc("/members", s.handleListMembers).Methods(http.MethodGet)

	if s.webDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(s.webDir)))
	}

	return r
}
