package domain

import "strings"

// SynthesizeCoordinates derives a deterministic pseudo-location from free-form
// place text. It is not geocoding: the only guarantees are that equal text
// (ignoring case) always lands on the same point and that the point stays
// inside a fixed window. City text selects the latitude band [-30, -6),
// region text the longitude band [-70, -36), and street text adds the same
// sub-degree offset to both axes so nearby street variations stay apart.
func SynthesizeCoordinates(city, region, street string) Coordinates {
	lat := -30 + float64(textChecksum(city)%25)
	lng := -70 + float64(textChecksum(region)%35)
	offset := float64(textChecksum(street)%100) / 1000

	return Coordinates{Lat: lat + offset, Lng: lng + offset}
}

// textChecksum sums the Unicode code points of the lowercased text.
// Empty text sums to zero.
func textChecksum(s string) int {
	sum := 0
	for _, r := range strings.ToLower(s) {
		sum += int(r)
	}
	return sum
}
