package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"voltx-wallet-engine/config"
	"voltx-wallet-engine/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProvider_FetchRates(t *testing.T) {
	p := NewStaticProvider()

	btcToUSD, usdToLocal, err := p.FetchRates(context.Background(), domain.DefaultCountry())
	require.NoError(t, err)
	assert.True(t, btcToUSD.Equal(ReferenceBTCToUSD))
	assert.Equal(t, "18.5", usdToLocal.String())
}

func TestStaticProvider_PerCountryLocalLeg(t *testing.T) {
	p := NewStaticProvider()
	mw := domain.CountryByID("mw")
	require.NotNil(t, mw)

	_, usdToLocal, err := p.FetchRates(context.Background(), *mw)
	require.NoError(t, err)
	assert.Equal(t, "1020", usdToLocal.String())
}

func TestCoinGeckoProvider_FetchRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/simple/price", r.URL.Path)
		assert.Equal(t, "bitcoin", r.URL.Query().Get("ids"))
		assert.Equal(t, "usd", r.URL.Query().Get("vs_currencies"))
		assert.Equal(t, "test-key", r.Header.Get("x-cg-pro-api-key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"bitcoin":{"usd":45123.55}}`))
	}))
	defer srv.Close()

	p := NewCoinGeckoProvider(srv.URL, "test-key", 2*time.Second)
	btcToUSD, usdToLocal, err := p.FetchRates(context.Background(), domain.DefaultCountry())
	require.NoError(t, err)
	assert.Equal(t, "45123.55", btcToUSD.String())
	assert.Equal(t, "18.5", usdToLocal.String())
}

func TestCoinGeckoProvider_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := NewCoinGeckoProvider(srv.URL, "", 2*time.Second)
	_, _, err := p.FetchRates(context.Background(), domain.DefaultCountry())
	assert.ErrorContains(t, err, "rate limited")
}

func TestCoinGeckoProvider_MissingQuote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"bitcoin":{}}`))
	}))
	defer srv.Close()

	p := NewCoinGeckoProvider(srv.URL, "", 2*time.Second)
	_, _, err := p.FetchRates(context.Background(), domain.DefaultCountry())
	assert.ErrorContains(t, err, "missing 'usd'")
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(config.RatesConfig{Provider: "static"})
	require.NoError(t, err)
	assert.IsType(t, &StaticProvider{}, p)

	p, err = NewProvider(config.RatesConfig{Provider: "coingecko", Timeout: time.Second})
	require.NoError(t, err)
	assert.IsType(t, &CoinGeckoProvider{}, p)

	_, err = NewProvider(config.RatesConfig{Provider: "oracle"})
	assert.Error(t, err)
}
