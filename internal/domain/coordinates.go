package domain

import "math"

// EarthRadiusKm is the sphere radius the haversine formula assumes.
const EarthRadiusKm = 6371.0

// Immutable geographic coordinates (latitude, longitude).
type Coordinates struct {
	Lat float64
	Lng float64
}

// Return coordinates as [lat, lng] for external API compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lat, c.Lng} }

// HaversineKm returns the great-circle distance in kilometers between c and o
// on a sphere of radius EarthRadiusKm.
func (c Coordinates) HaversineKm(o Coordinates) float64 {
	lat1 := radians(c.Lat)
	lng1 := radians(c.Lng)
	lat2 := radians(o.Lat)
	lng2 := radians(o.Lng)

	dLat := lat2 - lat1
	dLng := lng2 - lng1

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(a))
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
