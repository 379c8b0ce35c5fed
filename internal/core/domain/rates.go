package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateCacheTTL bounds how long a snapshot may be served from cache.
const RateCacheTTL = 60 * time.Second

// RateSnapshot is one observation of the BTC->USD->local rate chain.
// Snapshots are immutable; a refresh produces a new one.
type RateSnapshot struct {
	BTCToUSD   decimal.Decimal `json:"btc_to_usd"`
	USDToLocal decimal.Decimal `json:"usd_to_local"`
	BTCToLocal decimal.Decimal `json:"btc_to_local"`
	FetchedAt  time.Time       `json:"fetched_at"`
	CountryID  string          `json:"country_id"`
}

// NewRateSnapshot derives BTCToLocal from the two legs.
func NewRateSnapshot(countryID string, btcToUSD, usdToLocal decimal.Decimal, fetchedAt time.Time) RateSnapshot {
	return RateSnapshot{
		BTCToUSD:   btcToUSD,
		USDToLocal: usdToLocal,
		BTCToLocal: btcToUSD.Mul(usdToLocal),
		FetchedAt:  fetchedAt,
		CountryID:  countryID,
	}
}

// Fresh reports whether the snapshot is still inside the cache window.
func (s RateSnapshot) Fresh(now time.Time) bool {
	return now.Sub(s.FetchedAt) < RateCacheTTL
}
