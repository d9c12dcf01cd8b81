package domain

import (
	"math"
	"testing"
)

func TestHaversineKmSamePoint(t *testing.T) {
	p := Coordinates{Lat: -23.5, Lng: -46.6}
	if d := p.HaversineKm(p); d != 0 {
		t.Errorf("distance from a point to itself = %v, want 0", d)
	}
}

func TestHaversineKmQuarterCircumference(t *testing.T) {
	// 90 degrees along the equator is a quarter of a great circle.
	a := Coordinates{Lat: 0, Lng: 0}
	b := Coordinates{Lat: 0, Lng: 90}

	want := math.Pi * EarthRadiusKm / 2
	got := a.HaversineKm(b)
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("quarter circumference = %v, want %v", got, want)
	}
}

func TestHaversineKmSymmetric(t *testing.T) {
	a := Coordinates{Lat: -23.55, Lng: -46.63}
	b := Coordinates{Lat: -22.91, Lng: -43.17}

	if d1, d2 := a.HaversineKm(b), b.HaversineKm(a); math.Abs(d1-d2) > 1e-9 {
		t.Errorf("haversine not symmetric: %v vs %v", d1, d2)
	}
}

func TestSynthesizeCoordinatesDeterministic(t *testing.T) {
	first := SynthesizeCoordinates("São Paulo", "SP", "Praça da Sé")
	second := SynthesizeCoordinates("São Paulo", "SP", "Praça da Sé")

	if first != second {
		t.Errorf("same text produced different points: %+v vs %+v", first, second)
	}
}

func TestSynthesizeCoordinatesCaseInsensitive(t *testing.T) {
	lower := SynthesizeCoordinates("são paulo", "sp", "praça da sé")
	upper := SynthesizeCoordinates("SÃO PAULO", "SP", "PRAÇA DA SÉ")

	if lower != upper {
		t.Errorf("case changed the point: %+v vs %+v", lower, upper)
	}
}

func TestSynthesizeCoordinatesWindow(t *testing.T) {
	cases := []struct {
		city, region, street string
	}{
		{"São Paulo", "SP", "Praça da Sé"},
		{"Rio de Janeiro", "RJ", "Rua Primeiro de Março"},
		{"x", "y", "z"},
		{"", "", ""},
	}

	for _, tc := range cases {
		p := SynthesizeCoordinates(tc.city, tc.region, tc.street)
		if p.Lat < -30 || p.Lat >= -5 {
			t.Errorf("SynthesizeCoordinates(%q, %q, %q).Lat = %v, outside [-30, -5)", tc.city, tc.region, tc.street, p.Lat)
		}
		if p.Lng < -70 || p.Lng >= -35 {
			t.Errorf("SynthesizeCoordinates(%q, %q, %q).Lng = %v, outside [-70, -35)", tc.city, tc.region, tc.street, p.Lng)
		}
	}
}

func TestSynthesizeCoordinatesEmptyTextHitsWindowCorner(t *testing.T) {
	p := SynthesizeCoordinates("", "", "")
	if p.Lat != -30 || p.Lng != -70 {
		t.Errorf("empty descriptor = %+v, want the (-30, -70) corner", p)
	}
}

func TestSynthesizeCoordinatesDistinctPlacesDiffer(t *testing.T) {
	sp := SynthesizeCoordinates("São Paulo", "SP", "Praça da Sé")
	rio := SynthesizeCoordinates("Rio de Janeiro", "RJ", "Rua Primeiro de Março")

	if sp == rio {
		t.Errorf("distinct places collapsed onto one point: %+v", sp)
	}
}
