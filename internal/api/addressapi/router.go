// Package addressapi is the HTTP surface of the address service: cached
// postal-code resolution, trip distances, the audit trail and user profiles.
package addressapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"address-distance-service/internal/api"
	"address-distance-service/internal/ports"
	"address-distance-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root; handlers stay unaware of
// concrete adapters.
func NewRouter(
	resolver *services.Resolver,
	trips *services.Trips,
	users *services.Users,
	history ports.HistoryRepository,
	requestsPerMinute int,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(api.RequestID)
	r.Use(api.Logging)
	r.Use(api.RateLimit(requestsPerMinute))

	h := &Handler{
		Resolver: resolver,
		Trips:    trips,
		Users:    users,
		History:  history,
	}

	r.Get("/health", api.Health)

	r.Get("/address/{code}", h.GetAddress)
	r.Post("/distances", h.ComputeTrip)

	r.Get("/history", h.ListHistory)
	r.Delete("/history/{id}", h.DeleteHistory)

	r.Post("/users", h.CreateUser)
	r.Put("/users/{id}", h.UpdateUser)
	r.Delete("/users/{id}", h.DeleteUser)

	return r
}
