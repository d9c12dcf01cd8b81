package dto

import (
	"time"

	"address-distance-service/internal/domain"
)

type AddressResponse struct {
	PostalCode    string    `json:"postal_code"`
	Street        string    `json:"street"`
	Complement    string    `json:"complement"`
	District      string    `json:"district"`
	City          string    `json:"city"`
	RegionCode    string    `json:"region_code"`
	IBGE          string    `json:"ibge"`
	GIA           string    `json:"gia"`
	DDD           string    `json:"ddd"`
	SIAFI         string    `json:"siafi"`
	LastRefreshed time.Time `json:"last_refreshed"`
}

func NewAddressResponse(a domain.Address) AddressResponse {
	return AddressResponse{
		PostalCode:    a.PostalCode,
		Street:        a.Street,
		Complement:    a.Complement,
		District:      a.District,
		City:          a.City,
		RegionCode:    a.RegionCode,
		IBGE:          a.IBGE,
		GIA:           a.GIA,
		DDD:           a.DDD,
		SIAFI:         a.SIAFI,
		LastRefreshed: a.LastRefreshed,
	}
}

type TripRequest struct {
	OriginPostalCode      string `json:"origin_postal_code"`
	DestinationPostalCode string `json:"destination_postal_code"`
	Mode                  string `json:"mode"`
}

type TripResponse struct {
	Origin        AddressResponse `json:"origin"`
	Destination   AddressResponse `json:"destination"`
	Distance      float64         `json:"distance"`
	Unit          string          `json:"unit"`
	Mode          string          `json:"mode"`
	CalculationID string          `json:"calculation_id"`
}

type HistoryEntryResponse struct {
	ID            string    `json:"id"`
	QueryType     string    `json:"query_type"`
	QueryPayload  string    `json:"query_payload"`
	ResultPayload string    `json:"result_payload"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewHistoryEntryResponse(e domain.HistoryEntry) HistoryEntryResponse {
	return HistoryEntryResponse{
		ID:            e.ID,
		QueryType:     string(e.QueryType),
		QueryPayload:  e.QueryPayload,
		ResultPayload: e.ResultPayload,
		CreatedAt:     e.CreatedAt,
	}
}

type CreateUserRequest struct {
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Preferences map[string]any `json:"preferences"`
}

type UpdateUserRequest struct {
	Name        *string        `json:"name"`
	Email       *string        `json:"email"`
	Preferences map[string]any `json:"preferences"`
}

type UserResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Preferences map[string]any `json:"preferences"`
}

func NewUserResponse(u domain.User) UserResponse {
	prefs := u.Preferences
	if prefs == nil {
		prefs = map[string]any{}
	}
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Preferences: prefs,
	}
}
