// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/scanconsole/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	entityHandler *handlers.EntityHandler,
	dashboardHandler *handlers.DashboardHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		// Entity read models and loaders.
		r.Get("/entities/{type}", entityHandler.GetCollection)
		r.Post("/entities/{type}/load", entityHandler.LoadCollection)
		r.Get("/entities/{type}/{id}", entityHandler.GetEntity)
		r.Post("/entities/{type}/{id}/load", entityHandler.LoadEntity)

		// Dashboard settings.
		r.Get("/dashboards/{id}/settings", dashboardHandler.GetSettings)
		r.Post("/dashboards/settings/load", dashboardHandler.LoadSettings)
	})

	return r
}
