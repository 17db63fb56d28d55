// Package server implements the HTTP preview service. It renders label
// previews on demand so other tools can embed labelforge output without
// shelling out to the CLI.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/labelforge/labelforge/pkg/cache"
)

// Server serves rendered label previews over HTTP.
type Server struct {
	logger *log.Logger
	cache  cache.Cache
	router chi.Router
}

// New creates a preview server. The cache may be a NullCache to disable
// response caching.
func New(logger *log.Logger, c cache.Cache) *Server {
	s := &Server{
		logger: logger,
		cache:  c,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Get("/preview", s.handlePreview)

	s.router = r
	return s
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
