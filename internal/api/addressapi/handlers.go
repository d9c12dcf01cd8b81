package addressapi

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"address-distance-service/internal/api"
	"address-distance-service/internal/api/dto"
	"address-distance-service/internal/ports"
	"address-distance-service/internal/services"
)

type Handler struct {
	Resolver *services.Resolver
	Trips    *services.Trips
	Users    *services.Users
	History  ports.HistoryRepository
}

// GetAddress resolves one postal code through the cache.
func (h *Handler) GetAddress(w http.ResponseWriter, r *http.Request) {
	address, err := h.Resolver.Resolve(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		api.WriteDomainError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, dto.NewAddressResponse(address))
}

// ComputeTrip resolves both endpoints and returns the distance between them.
func (h *Handler) ComputeTrip(w http.ResponseWriter, r *http.Request) {
	var req dto.TripRequest
	if err := api.DecodeJSON(r, &req); err != nil {
		api.WriteError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if strings.TrimSpace(req.OriginPostalCode) == "" {
		api.WriteError(w, r, http.StatusBadRequest, "origin_postal_code is required")
		return
	}
	if strings.TrimSpace(req.DestinationPostalCode) == "" {
		api.WriteError(w, r, http.StatusBadRequest, "destination_postal_code is required")
		return
	}

	trip, err := h.Trips.ComputeTrip(r.Context(), req.OriginPostalCode, req.DestinationPostalCode, req.Mode)
	if err != nil {
		api.WriteDomainError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, dto.TripResponse{
		Origin:        dto.NewAddressResponse(trip.Origin),
		Destination:   dto.NewAddressResponse(trip.Destination),
		Distance:      trip.Distance,
		Unit:          trip.Unit,
		Mode:          trip.Mode,
		CalculationID: trip.CalculationID,
	})
}

// ListHistory returns the audit trail newest first.
func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	limit, offset := api.Pagination(r)

	entries, err := h.History.List(r.Context(), limit, offset)
	if err != nil {
		api.WriteDomainError(w, r, err)
		return
	}

	res := make([]dto.HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		res = append(res, dto.NewHistoryEntryResponse(e))
	}

	api.WriteJSON(w, r, http.StatusOK, res)
}

// DeleteHistory removes one audit entry.
func (h *Handler) DeleteHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.History.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		api.WriteDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateUser registers a profile.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := api.DecodeJSON(r, &req); err != nil {
		api.WriteError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if msg, ok := validateUserFields(req.Name, req.Email); !ok {
		api.WriteError(w, r, http.StatusBadRequest, msg)
		return
	}

	user, err := h.Users.Create(r.Context(), req.Name, req.Email, req.Preferences)
	if err != nil {
		api.WriteDomainError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusCreated, dto.NewUserResponse(user))
}

// UpdateUser applies a partial profile change.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateUserRequest
	if err := api.DecodeJSON(r, &req); err != nil {
		api.WriteError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	change := services.UserUpdate{Preferences: req.Preferences}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if utf8.RuneCountInString(name) < 3 {
			api.WriteError(w, r, http.StatusBadRequest, "name must have at least 3 characters")
			return
		}
		change.Name = &name
	}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if utf8.RuneCountInString(email) < 5 {
			api.WriteError(w, r, http.StatusBadRequest, "email must have at least 5 characters")
			return
		}
		change.Email = &email
	}

	user, err := h.Users.Update(r.Context(), chi.URLParam(r, "id"), change)
	if err != nil {
		api.WriteDomainError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, dto.NewUserResponse(user))
}

// DeleteUser removes a profile.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.Users.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		api.WriteDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func validateUserFields(name, email string) (string, bool) {
	if utf8.RuneCountInString(name) < 3 {
		return "name must have at least 3 characters", false
	}
	if utf8.RuneCountInString(email) < 5 {
		return "email must have at least 5 characters", false
	}
	return "", true
}
