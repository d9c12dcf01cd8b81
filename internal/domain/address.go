package domain

import (
	"fmt"
	"strings"
	"time"
)

// PostalCodeLength is the digit count of a normalized postal code.
const PostalCodeLength = 8

// FreshnessWindow is how long a cached address stays trusted before the next
// resolution goes back to the remote provider.
const FreshnessWindow = 30 * 24 * time.Hour

// A resolved postal address. PostalCode is the record identity: refreshing a
// code replaces the whole row, so a stored address is never partially updated.
type Address struct {
	PostalCode    string
	Street        string
	Complement    string
	District      string
	City          string
	RegionCode    string
	IBGE          string
	GIA           string
	DDD           string
	SIAFI         string
	LastRefreshed time.Time
}

// FreshAt reports whether the record can still be served from the cache at t.
func (a Address) FreshAt(t time.Time) bool {
	return t.Sub(a.LastRefreshed) < FreshnessWindow
}

// NormalizePostalCode strips separators and whitespace from a raw postal code
// and validates that exactly eight digits remain. It accepts "01001-000",
// "01001000" and spaced variants; anything else fails with
// ErrInvalidPostalCode before any I/O happens.
func NormalizePostalCode(raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	code := b.String()
	if len(code) != PostalCodeLength {
		return "", fmt.Errorf("postal code %q: %w", raw, ErrInvalidPostalCode)
	}
	return code, nil
}
