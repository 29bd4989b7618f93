package web

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mhess/twophase/internal/cube"
)

// Server serves the browser-based solver UI and its JSON API. tables
// is shared read-only across every request.
type Server struct {
	router *mux.Router
	tables *cube.Tables
}

func NewServer(tables *cube.Tables) *Server {
	s := &Server{
		router: mux.NewRouter(),
		tables: tables,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/solve", s.handleSolve).Methods("POST")
	api.HandleFunc("/verify", s.handleVerify).Methods("POST")
	api.HandleFunc("/random", s.handleRandom).Methods("GET")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	s.router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("./internal/web/static/"))))
	s.router.HandleFunc("/", s.handleIndex).Methods("GET")
}

func (s *Server) Start(addr string) error {
	log.Printf("Server starting on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
