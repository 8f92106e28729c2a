package api

import (
	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"deckflow/pkg/pipeline"
)

// NewRouter creates a chi router with all API routes mounted.
func NewRouter(runner *pipeline.Runner, logger *log.Logger) chi.Router {
	h := NewHandler(runner, logger)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(RequestID)
	r.Use(Logging(h.logger))

	r.Get("/health", h.Health)
	r.Get("/themes", h.Themes)
	r.Post("/generate", h.Generate)

	return r
}
