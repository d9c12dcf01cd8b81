package dto

import (
	"time"

	"address-distance-service/internal/domain"
)

// PlaceResult echoes one side of a calculation with its synthesized
// coordinates as [lat, lng].
type PlaceResult struct {
	City        string    `json:"city"`
	Region      string    `json:"region"`
	Coordinates []float64 `json:"coordinates"`
}

type CalculateResponse struct {
	ID          string      `json:"id"`
	Origin      PlaceResult `json:"origin"`
	Destination PlaceResult `json:"destination"`
	Distance    float64     `json:"distance"`
	Unit        string      `json:"unit"`
	Mode        string      `json:"mode"`
	CreatedAt   time.Time   `json:"created_at"`
}

// CalculationResponse is the flat list-item shape of a stored calculation.
type CalculationResponse struct {
	ID                string    `json:"id"`
	OriginCity        string    `json:"origin_city"`
	OriginRegion      string    `json:"origin_region"`
	OriginStreet      string    `json:"origin_street"`
	DestinationCity   string    `json:"destination_city"`
	DestinationRegion string    `json:"destination_region"`
	DestinationStreet string    `json:"destination_street"`
	Mode              string    `json:"mode"`
	Distance          float64   `json:"distance"`
	Unit              string    `json:"unit"`
	CreatedAt         time.Time `json:"created_at"`
}

func NewCalculationResponse(c domain.Calculation) CalculationResponse {
	return CalculationResponse{
		ID:                c.ID,
		OriginCity:        c.Origin.City,
		OriginRegion:      c.Origin.Region,
		OriginStreet:      c.Origin.Street,
		DestinationCity:   c.Destination.City,
		DestinationRegion: c.Destination.Region,
		DestinationStreet: c.Destination.Street,
		Mode:              c.Mode,
		Distance:          c.Distance,
		Unit:              c.Unit,
		CreatedAt:         c.CreatedAt,
	}
}

type ConfigUpdateRequest struct {
	Configurations map[string]any `json:"configurations"`
}

type ConfigUpdateResponse struct {
	Updated   []string  `json:"updated"`
	Timestamp time.Time `json:"timestamp"`
}
