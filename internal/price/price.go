// Package price supplies ETH/USD estimates for the gas-cap conversion.
package price

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Supplier returns a positive ETH/USD estimate on demand.
type Supplier interface {
	EthUsd(ctx context.Context) float64
}

// Static is a fixed fallback price.
type Static float64

func (s Static) EthUsd(context.Context) float64 { return float64(s) }

// HTTP fetches a Coingecko-shaped simple price and falls back to the static
// value on any error. The engine never fails because the price feed is down.
type HTTP struct {
	URL      string
	Fallback float64

	client *http.Client
}

func NewHTTP(url string, fallback float64) *HTTP {
	return &HTTP{
		URL:      url,
		Fallback: fallback,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (h *HTTP) EthUsd(ctx context.Context) float64 {
	v, err := h.fetch(ctx)
	if err != nil || v <= 0 {
		return h.Fallback
	}
	return v
}

func (h *HTTP) fetch(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return 0, err
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("http %d", resp.StatusCode)
	}
	// {"ethereum":{"usd":2500.12}}
	var out struct {
		Ethereum struct {
			USD float64 `json:"usd"`
		} `json:"ethereum"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, err
	}
	return out.Ethereum.USD, nil
}
