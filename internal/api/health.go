package api

import (
	"net/http"
	"time"
)

// Health provides a minimal liveness check endpoint shared by both services.
func Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, r, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
