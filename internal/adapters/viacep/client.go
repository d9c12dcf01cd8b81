package viacep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"address-distance-service/internal/domain"
	"address-distance-service/internal/platform/obs"
	"address-distance-service/internal/ports"
)

const defaultBaseURL = "https://viacep.com.br/ws"

// Client resolves Brazilian postal codes against a ViaCEP-compatible HTTP
// endpoint. Transient upstream failures are retried; everything the provider
// answers is classified into the domain failure taxonomy. Safe for
// concurrent use.
type Client struct {
	session *http.Client
	baseURL string
}

// NewClient builds a client for the given endpoint. An empty baseURL selects
// the public ViaCEP service; a non-positive timeout falls back to 10s.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		session: &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Wire shape of a ViaCEP lookup. The provider flags unknown codes with an
// "erro" field it sends as a bool on some deployments and as the string
// "true" on others.
type lookupResponse struct {
	CEP        string          `json:"cep"`
	Street     string          `json:"logradouro"`
	Complement string          `json:"complemento"`
	District   string          `json:"bairro"`
	City       string          `json:"localidade"`
	RegionCode string          `json:"uf"`
	IBGE       string          `json:"ibge"`
	GIA        string          `json:"gia"`
	DDD        string          `json:"ddd"`
	SIAFI      string          `json:"siafi"`
	Erro       json.RawMessage `json:"erro"`
}

func (r *lookupResponse) notFound() bool {
	return strings.Trim(string(r.Erro), `"`) == "true"
}

// Resolve a normalized postal code against the provider.
func (c *Client) Lookup(ctx context.Context, postalCode string) (_ ports.LookupResult, err error) {
	defer obs.Time(ctx, "viacep.Lookup")(&err)

	endpoint := fmt.Sprintf("%s/%s/json/", c.baseURL, postalCode)

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, endpoint)
	})
	if err != nil {
		var he *httpStatusError
		if errors.As(err, &he) {
			return ports.LookupResult{}, &domain.UpstreamError{Service: "viacep", Status: he.Code, Err: he}
		}
		return ports.LookupResult{}, &domain.UpstreamError{Service: "viacep", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ports.LookupResult{}, &domain.UpstreamError{Service: "viacep", Err: fmt.Errorf("read response: %w", err)}
	}

	var decoded lookupResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return ports.LookupResult{}, &domain.UpstreamError{Service: "viacep", Err: fmt.Errorf("decode response: %w", err)}
	}

	if decoded.notFound() {
		return ports.LookupResult{}, fmt.Errorf("postal code %s: %w", postalCode, domain.ErrNotFound)
	}

	return ports.LookupResult{
		Address: domain.Address{
			PostalCode: strings.ReplaceAll(decoded.CEP, "-", ""),
			Street:     decoded.Street,
			Complement: decoded.Complement,
			District:   decoded.District,
			City:       decoded.City,
			RegionCode: decoded.RegionCode,
			IBGE:       decoded.IBGE,
			GIA:        decoded.GIA,
			DDD:        decoded.DDD,
			SIAFI:      decoded.SIAFI,
		},
		Raw: body,
	}, nil
}
