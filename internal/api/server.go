package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/luoxb/novelshelf/internal/config"
	"github.com/luoxb/novelshelf/internal/library"
	"github.com/luoxb/novelshelf/internal/parser"
	"github.com/luoxb/novelshelf/internal/store"
)

// Server is the HTTP API server for novelshelf.
type Server struct {
	router   chi.Router
	library  *library.Library
	parser   *parser.Parser
	progress *store.ProgressStore
	log      *slog.Logger
	cfg      config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(lib *library.Library, p *parser.Parser, progress *store.ProgressStore, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		library:  lib,
		parser:   p,
		progress: progress,
		log:      log,
		cfg:      cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey))
		}

		r.Get("/api/novels", s.handleListNovels)
		r.Post("/api/novels/rescan", s.handleRescan)
		r.Get("/api/novels/{novelID}", s.handleGetNovel)
		r.Get("/api/novels/{novelID}/chapters/{index}", s.handleGetChapter)
		r.Get("/api/novels/{novelID}/search", s.handleSearch)
		r.Get("/api/novels/{novelID}/progress", s.handleGetProgress)
		r.Put("/api/novels/{novelID}/progress", s.handlePutProgress)

		r.Post("/api/parse", s.handleParse)
		r.Post("/api/validate", s.handleValidate)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
