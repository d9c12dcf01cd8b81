package distcalc

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"address-distance-service/internal/domain"
	"address-distance-service/internal/ports"
)

func TestHTTPClientCalculate(t *testing.T) {
	var gotBody ports.TripQuery
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/calculate" {
			t.Errorf("request = %s %s, want POST /calculate", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "calc-9",
			"origin": {"city": "São Paulo", "region": "SP", "coordinates": [-25.0, -45.0]},
			"destination": {"city": "Rio de Janeiro", "region": "RJ", "coordinates": [-16.0, -40.0]},
			"distance": 398.74,
			"unit": "km",
			"mode": "driving",
			"created_at": "2026-05-01T08:00:00Z"
		}`))
	}))
	t.Cleanup(srv.Close)

	client := NewHTTPClient(srv.URL, 5*time.Second)
	query := ports.TripQuery{
		Origin:      domain.Place{City: "São Paulo", Region: "SP", Street: "Praça da Sé"},
		Destination: domain.Place{City: "Rio de Janeiro", Region: "RJ", Street: "Praça Quinze"},
		Mode:        "driving",
	}

	result, err := client.Calculate(context.Background(), query)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}

	if result.CalculationID != "calc-9" || result.Distance != 398.74 || result.Unit != "km" {
		t.Errorf("result = %+v", result)
	}
	if gotBody.Origin.City != "São Paulo" || gotBody.Mode != "driving" {
		t.Errorf("service received %+v", gotBody)
	}
}

func TestHTTPClientUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"no configuration"}`, http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	client := NewHTTPClient(srv.URL, 5*time.Second)
	_, err := client.Calculate(context.Background(), ports.TripQuery{Mode: "direct"})

	var ue *domain.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("calculate = %v, want *domain.UpstreamError", err)
	}
	if ue.Service != "distance-api" || ue.Status != http.StatusInternalServerError {
		t.Errorf("upstream error = %+v", ue)
	}
}
