package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"campo_direto/internal/usecase/interfaces"
	"campo_direto/pkg/logger"
)

var ErrMissingFreightRateURL = errors.New("missing FREIGHT_RATE_URL")

const defaultRequestTimeout = 5 * time.Second

// mockRate keeps local development working without the logistics collaborator.
var mockRate = interfaces.FreightRate{
	PricePerKgKm:        0.012,
	PricePerM3Km:        1.35,
	MinimumCharge:       150,
	ConsolidationFactor: 0.85,
}

// FreightRateGateway fetches the current freight rate table from the
// logistics collaborator. FREIGHT_RATE_MOCK enables a fixed local rate.
type FreightRateGateway struct {
	client   *http.Client
	url      string
	mockMode bool
}

var _ interfaces.IFreightRateGateway = (*FreightRateGateway)(nil)

func NewFreightRateGateway(url string) (*FreightRateGateway, error) {
	if isFreightRateMockEnabled() {
		logger.S().Infow("freight rate gateway in mock mode")
		return &FreightRateGateway{mockMode: true}, nil
	}
	if url == "" {
		return nil, ErrMissingFreightRateURL
	}
	return &FreightRateGateway{
		client: &http.Client{Timeout: defaultRequestTimeout},
		url:    url,
	}, nil
}

func (g *FreightRateGateway) GetRate(ctx context.Context) (interfaces.FreightRate, error) {
	if g.mockMode {
		return mockRate, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.url, nil)
	if err != nil {
		return interfaces.FreightRate{}, err
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return interfaces.FreightRate{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return interfaces.FreightRate{}, fmt.Errorf("freight rate endpoint returned %d", resp.StatusCode)
	}

	var payload struct {
		PricePerKgKm        float64 `json:"price_per_kg_km"`
		PricePerM3Km        float64 `json:"price_per_m3_km"`
		MinimumCharge       float64 `json:"minimum_charge"`
		ConsolidationFactor float64 `json:"consolidation_factor"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return interfaces.FreightRate{}, err
	}
	return interfaces.FreightRate{
		PricePerKgKm:        payload.PricePerKgKm,
		PricePerM3Km:        payload.PricePerM3Km,
		MinimumCharge:       payload.MinimumCharge,
		ConsolidationFactor: payload.ConsolidationFactor,
	}, nil
}

func isFreightRateMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("FREIGHT_RATE_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
