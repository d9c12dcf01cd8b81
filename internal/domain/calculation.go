package domain

import "time"

// Place is the city/region/street descriptor a distance calculation works on.
// Values are copied out of resolved addresses at calculation time, so a later
// cache refresh never changes a stored calculation.
type Place struct {
	City   string `json:"city"`
	Region string `json:"region"`
	Street string `json:"street"`
}

// Calculation is one persisted distance computation.
type Calculation struct {
	ID          string
	Origin      Place
	Destination Place
	Mode        string
	Distance    float64
	Unit        string
	CreatedAt   time.Time
}
