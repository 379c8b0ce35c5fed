// Package rates provides exchange-rate providers for the rate cache. The
// static provider serves the reference book; the CoinGecko provider fetches
// the live BTC->USD leg.
package rates

import (
	"context"

	"voltx-wallet-engine/internal/core/domain"

	"github.com/shopspring/decimal"
)

// ReferenceBTCToUSD is the static book's BTC->USD leg.
var ReferenceBTCToUSD = decimal.NewFromInt(45000)

// StaticProvider implements ports.RateProvider from the built-in reference
// book: a fixed BTC->USD leg and the country catalog's USD->local leg.
type StaticProvider struct{}

// NewStaticProvider creates a new StaticProvider.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

// FetchRates returns the reference rates for the corridor.
func (p *StaticProvider) FetchRates(_ context.Context, country domain.Country) (decimal.Decimal, decimal.Decimal, error) {
	return ReferenceBTCToUSD, country.USDRate, nil
}
