package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"address-distance-service/internal/domain"
)

// WriteJSON renders v with the given status. Encoding failures are logged,
// not surfaced: headers are already gone by then.
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("encode response failed")
	}
}

// WriteError renders the shared error body shape.
func WriteError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	WriteJSON(w, r, status, map[string]string{"error": msg})
}

// WriteDomainError maps a service failure onto its HTTP status. Internal
// failures are logged and masked; everything else surfaces its message.
func WriteDomainError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusForError(err)
	if status == http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		WriteError(w, r, status, "internal server error")
		return
	}
	WriteError(w, r, status, err.Error())
}

// StatusForError classifies the domain failure taxonomy:
// invalid input 400, absent records 404, failing collaborators 502,
// anything unclassified 500.
func StatusForError(err error) int {
	var ue *domain.UpstreamError
	switch {
	case errors.Is(err, domain.ErrInvalidPostalCode),
		errors.Is(err, domain.ErrNoConfigKeys),
		errors.Is(err, domain.ErrEmailTaken):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &ue):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// DecodeJSON strictly decodes a single JSON object into dst. Unknown fields
// and trailing content are rejected; the returned error message is safe to
// hand to the client.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return errors.New("invalid json body")
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must contain only one JSON object")
	}
	return nil
}
