package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"voltx-wallet-engine/internal/core/domain"

	"github.com/shopspring/decimal"
)

// CoinGecko docs: https://docs.coingecko.com/
// Auth header: "x-cg-pro-api-key: <KEY>" (works for free & pro keys)
// Endpoint used: /simple/price?ids=bitcoin&vs_currencies=usd
//
// CoinGecko covers the BTC->USD leg only; the USD->local leg still comes from
// the country catalog since the supported corridors are not listed there.

// CoinGeckoProvider implements ports.RateProvider against the CoinGecko API.
type CoinGeckoProvider struct {
	baseURL string
	apiKey  string // optional
	client  *http.Client
}

type cgResp map[string]map[string]json.Number

// NewCoinGeckoProvider creates a new CoinGeckoProvider.
func NewCoinGeckoProvider(baseURL, apiKey string, timeout time.Duration) *CoinGeckoProvider {
	if baseURL == "" {
		baseURL = "https://api.coingecko.com/api/v3"
	}
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 60 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &CoinGeckoProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  strings.TrimSpace(apiKey),
		client: &http.Client{
			Timeout:   timeout,
			Transport: tr,
		},
	}
}

// FetchRates fetches the live BTC->USD leg and pairs it with the catalog's
// USD->local leg.
func (p *CoinGeckoProvider) FetchRates(ctx context.Context, country domain.Country) (decimal.Decimal, decimal.Decimal, error) {
	q := url.Values{}
	q.Set("ids", "bitcoin")
	q.Set("vs_currencies", "usd")

	u := fmt.Sprintf("%s/simple/price?%s", p.baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	if p.apiKey != "" {
		req.Header.Set("x-cg-pro-api-key", p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return decimal.Zero, decimal.Zero, fmt.Errorf("coingecko: rate limited (%d)", resp.StatusCode)
	}
	if resp.StatusCode/100 != 2 {
		return decimal.Zero, decimal.Zero, fmt.Errorf("coingecko: http %d", resp.StatusCode)
	}

	var data cgResp
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	m, ok := data["bitcoin"]
	if !ok {
		return decimal.Zero, decimal.Zero, errors.New("coingecko: missing 'bitcoin' key")
	}
	raw, ok := m["usd"]
	if !ok {
		return decimal.Zero, decimal.Zero, errors.New("coingecko: missing 'usd' quote")
	}
	btcToUSD, err := decimal.NewFromString(raw.String())
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("coingecko: bad price %q: %w", raw, err)
	}

	return btcToUSD, country.USDRate, nil
}
