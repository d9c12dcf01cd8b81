package repositories

import (
	"fmt"
	"time"
)

// Timestamps are stored as fixed-width UTC text. Unlike RFC 3339 with
// trimmed fractional zeros, the fixed nanosecond width keeps lexicographic
// order identical to chronological order, so ORDER BY created_at behaves the
// same on SQLite and PostgreSQL.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse stored timestamp %q: %w", s, err)
	}
	return t, nil
}
