package viacep

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"address-distance-service/internal/domain"
)

const sePayload = `{
	"cep": "01001-000",
	"logradouro": "Praça da Sé",
	"complemento": "lado ímpar",
	"bairro": "Sé",
	"localidade": "São Paulo",
	"uf": "SP",
	"ibge": "3550308",
	"gia": "1004",
	"ddd": "11",
	"siafi": "7107"
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(srv.URL, 5*time.Second)
}

func TestLookupSuccess(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sePayload))
	})

	result, err := client.Lookup(context.Background(), "01001000")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}

	if gotPath != "/01001000/json/" {
		t.Errorf("request path = %q, want /01001000/json/", gotPath)
	}

	addr := result.Address
	if addr.PostalCode != "01001000" {
		t.Errorf("PostalCode = %q, want separator stripped 01001000", addr.PostalCode)
	}
	if addr.City != "São Paulo" || addr.RegionCode != "SP" || addr.Street != "Praça da Sé" {
		t.Errorf("address fields wrong: %+v", addr)
	}
	if string(result.Raw) != sePayload {
		t.Errorf("raw payload not captured verbatim")
	}
}

func TestLookupUnknownCode(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"boolean erro", `{"erro": true}`},
		{"string erro", `{"erro": "true"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			})

			_, err := client.Lookup(context.Background(), "99999999")
			if !errors.Is(err, domain.ErrNotFound) {
				t.Errorf("lookup = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestLookupRetriesServerErrors(t *testing.T) {
	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) <= 2 {
			http.Error(w, "upstream hiccup", http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(sePayload))
	})

	result, err := client.Lookup(context.Background(), "01001000")
	if err != nil {
		t.Fatalf("lookup after retries: %v", err)
	}
	if got := hits.Load(); got != 3 {
		t.Errorf("attempts = %d, want 3", got)
	}
	if result.Address.City != "São Paulo" {
		t.Errorf("address = %+v", result.Address)
	}
}

func TestLookupClientErrorIsNotRetried(t *testing.T) {
	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "forbidden", http.StatusForbidden)
	})

	_, err := client.Lookup(context.Background(), "01001000")

	var ue *domain.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("lookup = %v, want *domain.UpstreamError", err)
	}
	if ue.Service != "viacep" || ue.Status != http.StatusForbidden {
		t.Errorf("upstream error = %+v, want viacep status 403", ue)
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("attempts = %d, want 1", got)
	}
}

func TestLookupExhaustedRetries(t *testing.T) {
	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "still down", http.StatusServiceUnavailable)
	})

	_, err := client.Lookup(context.Background(), "01001000")

	var ue *domain.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("lookup = %v, want *domain.UpstreamError", err)
	}
	if ue.Status != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", ue.Status)
	}
	if got := hits.Load(); got != 4 {
		t.Errorf("attempts = %d, want 4", got)
	}
}

func TestLookupMalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	})

	_, err := client.Lookup(context.Background(), "01001000")

	var ue *domain.UpstreamError
	if !errors.As(err, &ue) {
		t.Errorf("lookup = %v, want *domain.UpstreamError", err)
	}
}
