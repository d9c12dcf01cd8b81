// Package calcapi is the HTTP surface of the distance service: stateless
// place-to-place calculations, their stored records and the service
// configuration endpoint.
package calcapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"address-distance-service/internal/api"
	"address-distance-service/internal/ports"
	"address-distance-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler.
func NewRouter(
	calculations *services.Calculations,
	config ports.ConfigRepository,
	requestsPerMinute int,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(api.RequestID)
	r.Use(api.Logging)
	r.Use(api.RateLimit(requestsPerMinute))

	h := &Handler{
		Calculations: calculations,
		Config:       config,
	}

	r.Get("/health", api.Health)

	r.Post("/calculate", h.Calculate)
	r.Get("/calculations", h.ListCalculations)
	r.Delete("/calculations/{id}", h.DeleteCalculation)

	r.Put("/configurations", h.UpdateConfigurations)

	return r
}
