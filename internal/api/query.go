package api

import (
	"net/http"
	"strconv"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// Pagination reads limit and offset query parameters with the shared
// defaults: limit outside [1, 100] falls back to 10, negative or malformed
// offsets to 0.
func Pagination(r *http.Request) (limit, offset int) {
	limit = defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 1 && v <= maxListLimit {
			limit = v
		}
	}

	if raw := r.URL.Query().Get("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			offset = v
		}
	}

	return limit, offset
}
