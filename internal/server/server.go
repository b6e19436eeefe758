// Package server exposes the planning API over HTTP: plan generation (plain
// and streaming), single-meal regeneration, image parsing and document
// extraction.
package server

import (
	"net/http"

	"fine-ill-eat/internal/config"
	"fine-ill-eat/internal/llm"
	"fine-ill-eat/internal/metrics"
	"fine-ill-eat/internal/plan"
)

// Server holds the handler dependencies. describer may be nil when no
// Gemini credential is configured; the image endpoint then reports
// unavailability instead of failing at startup.
type Server struct {
	cfg       *config.Config
	generator *plan.Generator
	describer llm.ImageDescriber
	store     *metrics.Store
}

// New creates the API server.
func New(cfg *config.Config, generator *plan.Generator, describer llm.ImageDescriber, store *metrics.Store) *Server {
	return &Server{cfg: cfg, generator: generator, describer: describer, store: store}
}

// Routes builds the HTTP handler with auth applied to the API surface.
// /health stays open so load balancers can probe without a token.
func (s *Server) Routes() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/api/meal-plan", s.handleMealPlan)
	api.HandleFunc("/api/meal-plan/stream", s.handleMealPlanStream)
	api.HandleFunc("/api/regenerate-meal", s.handleRegenerateMeal)
	api.HandleFunc("/api/parse-meal-image", s.handleParseMealImage)
	api.HandleFunc("/api/extract-document", s.handleExtractDocument)

	mux := http.NewServeMux()
	mux.Handle("/api/", s.requireAuth(api))
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}
