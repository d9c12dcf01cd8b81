package repositories

import (
	"sort"
	"testing"
	"time"
)

func TestTimeRoundTrip(t *testing.T) {
	in := time.Date(2026, 3, 15, 9, 30, 45, 123456789, time.UTC)

	out, err := parseTime(formatTime(in))
	if err != nil {
		t.Fatalf("parse formatted time: %v", err)
	}
	if !out.Equal(in) {
		t.Errorf("round trip = %v, want %v", out, in)
	}
}

func TestTimeFormatNormalizesToUTC(t *testing.T) {
	zone := time.FixedZone("BRT", -3*60*60)
	local := time.Date(2026, 3, 15, 9, 0, 0, 0, zone)

	out, err := parseTime(formatTime(local))
	if err != nil {
		t.Fatalf("parse formatted time: %v", err)
	}
	if !out.Equal(local) {
		t.Errorf("round trip = %v, want instant %v", out, local)
	}
}

// Lexicographic order of the stored text must match chronological order,
// since newest-first listing relies on ORDER BY over the text column.
func TestTimeFormatSortsChronologically(t *testing.T) {
	times := []time.Time{
		time.Date(2026, 1, 2, 0, 0, 0, 999999999, time.UTC),
		time.Date(2026, 1, 2, 0, 0, 1, 0, time.UTC),
		time.Date(2026, 1, 10, 23, 59, 59, 0, time.UTC),
		time.Date(2026, 2, 1, 0, 0, 0, 1, time.UTC),
		time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
	}

	formatted := make([]string, len(times))
	for i, tm := range times {
		formatted[i] = formatTime(tm)
	}

	if !sort.StringsAreSorted(formatted) {
		t.Errorf("formatted timestamps not in chronological order: %v", formatted)
	}
}
