// Package web hosts the interactive upload → edit → generate surface on top
// of the core pipeline. All table state lives in per-session deep copies.
package web

import (
	"net/http"

	"github.com/budgetbox/budgetbox-go/pkg/budgetbox"
)

// Server wires the HTTP surface to the pipeline.
type Server struct {
	opts  budgetbox.Options
	store *sessionStore
	mux   *http.ServeMux
}

// NewServer creates a server applying opts to every uploaded table.
func NewServer(opts budgetbox.Options) *Server {
	s := &Server{
		opts:  opts,
		store: newSessionStore(),
		mux:   http.NewServeMux(),
	}
	s.mux.HandleFunc("/", s.indexHandler)
	s.mux.HandleFunc("/upload", s.uploadHandler)
	s.mux.HandleFunc("/session", s.sessionHandler)
	s.mux.HandleFunc("/remove", s.removeHandler)
	s.mux.HandleFunc("/annotate", s.annotateHandler)
	s.mux.HandleFunc("/generate", s.generateHandler)
	s.mux.HandleFunc("/healthz", healthHandler)
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}
