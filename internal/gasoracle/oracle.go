// Package gasoracle polls an Etherscan-style gas tracker for network fee
// levels. Output is informational only; the fee calculator works from the
// USD cap, never from oracle numbers.
package gasoracle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

type Prices struct {
	SafeGwei    string
	ProposeGwei string
	FastGwei    string
	BaseFeeGwei string
}

type Oracle struct {
	url    string
	client *http.Client
}

func New(url string) *Oracle {
	return &Oracle{
		url:    url,
		client: &http.Client{Timeout: 8 * time.Second},
	}
}

func (o *Oracle) Fetch(ctx context.Context) (Prices, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.url, nil)
	if err != nil {
		return Prices{}, err
	}
	resp, err := o.client.Do(req)
	if err != nil {
		return Prices{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Prices{}, fmt.Errorf("http %d", resp.StatusCode)
	}
	var out struct {
		Status string `json:"status"`
		Result struct {
			SafeGasPrice    string `json:"SafeGasPrice"`
			ProposeGasPrice string `json:"ProposeGasPrice"`
			FastGasPrice    string `json:"FastGasPrice"`
			SuggestBaseFee  string `json:"suggestBaseFee"`
		} `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Prices{}, err
	}
	if out.Status != "1" {
		return Prices{}, errors.New("gas oracle returned non-ok status")
	}
	return Prices{
		SafeGwei:    out.Result.SafeGasPrice,
		ProposeGwei: out.Result.ProposeGasPrice,
		FastGwei:    out.Result.FastGasPrice,
		BaseFeeGwei: out.Result.SuggestBaseFee,
	}, nil
}

// Monitor polls until ctx ends, reporting through logf.
func (o *Oracle) Monitor(ctx context.Context, interval time.Duration, logf func(string, ...any)) {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		p, err := o.Fetch(ctx)
		if err != nil {
			logf("gas oracle: %v", err)
		} else {
			logf("gas: safe=%s propose=%s fast=%s baseFee=%s gwei",
				p.SafeGwei, p.ProposeGwei, p.FastGwei, p.BaseFeeGwei)
		}
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}
}
