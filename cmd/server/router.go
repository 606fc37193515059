package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ADNAN-ZEYA/Website-Builder/internal/api"
	"github.com/ADNAN-ZEYA/Website-Builder/internal/api/middleware"
)

// newRouter creates and configures the application router with all routes
// and middleware.
func newRouter(siteHandler *api.SiteHandler) http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Trace)

	// The frontend is served from a different origin, so CORS stays open.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Get("/", siteHandler.Root)
	r.Get("/health", siteHandler.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", siteHandler.GenerateSite)
	})

	return r
}
