package calcapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"address-distance-service/internal/api"
	"address-distance-service/internal/api/dto"
	"address-distance-service/internal/domain"
	"address-distance-service/internal/ports"
	"address-distance-service/internal/services"
)

type Handler struct {
	Calculations *services.Calculations
	Config       ports.ConfigRepository
}

// Calculate computes and persists one place-to-place distance.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var query ports.TripQuery
	if err := api.DecodeJSON(r, &query); err != nil {
		api.WriteError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if msg, ok := validateQuery(query); !ok {
		api.WriteError(w, r, http.StatusBadRequest, msg)
		return
	}

	outcome, err := h.Calculations.Calculate(r.Context(), query)
	if err != nil {
		api.WriteDomainError(w, r, err)
		return
	}

	calc := outcome.Calculation
	api.WriteJSON(w, r, http.StatusOK, dto.CalculateResponse{
		ID: calc.ID,
		Origin: dto.PlaceResult{
			City:        calc.Origin.City,
			Region:      calc.Origin.Region,
			Coordinates: outcome.Origin.CoordsToList(),
		},
		Destination: dto.PlaceResult{
			City:        calc.Destination.City,
			Region:      calc.Destination.Region,
			Coordinates: outcome.Destination.CoordsToList(),
		},
		Distance:  calc.Distance,
		Unit:      calc.Unit,
		Mode:      calc.Mode,
		CreatedAt: calc.CreatedAt,
	})
}

// ListCalculations returns stored calculations newest first.
func (h *Handler) ListCalculations(w http.ResponseWriter, r *http.Request) {
	limit, offset := api.Pagination(r)

	calcs, err := h.Calculations.List(r.Context(), limit, offset)
	if err != nil {
		api.WriteDomainError(w, r, err)
		return
	}

	res := make([]dto.CalculationResponse, 0, len(calcs))
	for _, c := range calcs {
		res = append(res, dto.NewCalculationResponse(c))
	}

	api.WriteJSON(w, r, http.StatusOK, res)
}

// DeleteCalculation removes one stored calculation.
func (h *Handler) DeleteCalculation(w http.ResponseWriter, r *http.Request) {
	if err := h.Calculations.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		api.WriteDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateConfigurations upserts every supplied key, including keys the engine
// does not read yet.
func (h *Handler) UpdateConfigurations(w http.ResponseWriter, r *http.Request) {
	var req dto.ConfigUpdateRequest
	if err := api.DecodeJSON(r, &req); err != nil {
		api.WriteError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	values := make(map[string]string, len(req.Configurations))
	for key, raw := range req.Configurations {
		value, ok := scalarString(raw)
		if !ok {
			api.WriteError(w, r, http.StatusBadRequest,
				fmt.Sprintf("configuration %q must be a scalar value", key))
			return
		}
		values[key] = value
	}

	updated, err := h.Config.UpdateAll(r.Context(), values)
	if err != nil {
		api.WriteDomainError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, dto.ConfigUpdateResponse{
		Updated:   updated,
		Timestamp: time.Now().UTC(),
	})
}

// scalarString renders a decoded JSON scalar as its stored text form.
// Objects, arrays and null are rejected.
func scalarString(v any) (string, bool) {
	switch value := v.(type) {
	case string:
		return value, true
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(value), true
	default:
		return "", false
	}
}

func validateQuery(q ports.TripQuery) (string, bool) {
	places := []struct {
		side  string
		place domain.Place
	}{
		{"origin", q.Origin},
		{"destination", q.Destination},
	}

	for _, p := range places {
		if strings.TrimSpace(p.place.City) == "" {
			return p.side + ".city is required", false
		}
		if strings.TrimSpace(p.place.Region) == "" {
			return p.side + ".region is required", false
		}
		if strings.TrimSpace(p.place.Street) == "" {
			return p.side + ".street is required", false
		}
	}
	return "", true
}
