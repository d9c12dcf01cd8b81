package distcalc

import (
	"bytes"
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

// HTTPClient calls a remote distance service. Unlike the provider lookup it
// does not retry: the remote side persists a calculation per accepted
// request, and a blind retry could store duplicates for one trip.
type HTTPClient struct {
	session *http.Client
	baseURL string
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		session: &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Wire shape of the distance service's calculate response; fields the
// orchestrator does not need are ignored.
type calculateResponse struct {
	ID       string  `json:"id"`
	Distance float64 `json:"distance"`
	Unit     string  `json:"unit"`
}

func (c *HTTPClient) Calculate(ctx context.Context, query ports.TripQuery) (_ ports.TripResult, err error) {
	defer obs.Time(ctx, "distcalc.Calculate")(&err)

	payload, err := json.Marshal(query)
	if err != nil {
		return ports.TripResult{}, fmt.Errorf("encode calculate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/calculate", bytes.NewReader(payload))
	if err != nil {
		return ports.TripResult{}, fmt.Errorf("create calculate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.session.Do(req)
	if err != nil {
		return ports.TripResult{}, &domain.UpstreamError{Service: "distance-api", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return ports.TripResult{}, &domain.UpstreamError{
			Service: "distance-api",
			Status:  resp.StatusCode,
			Err:     errors.New(strings.TrimSpace(string(b))),
		}
	}

	var decoded calculateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.TripResult{}, &domain.UpstreamError{Service: "distance-api", Err: fmt.Errorf("decode response: %w", err)}
	}

	return ports.TripResult{
		CalculationID: decoded.ID,
		Distance:      decoded.Distance,
		Unit:          decoded.Unit,
	}, nil
}
