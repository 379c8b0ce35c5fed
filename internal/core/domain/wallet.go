package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyBTC is the ledger key for the Bitcoin balance. Local currencies
// use their lowercase ISO code (zmw, zar, ...).
const CurrencyBTC = "btc"

// Wallet holds the custodial wallet's receiving addresses. Key material is
// managed outside this engine and never stored here.
type Wallet struct {
	BTCAddress       string    `json:"btc_address"`
	LightningAddress string    `json:"lightning_address"`
	CreatedAt        time.Time `json:"created_at"`
}

// Balance maps a currency code to a non-negative amount.
type Balance map[string]decimal.Decimal

// Get returns the balance for a currency, zero if absent.
func (b Balance) Get(currency string) decimal.Decimal {
	if v, ok := b[currency]; ok {
		return v
	}
	return decimal.Zero
}

// Clone returns an independent copy of the balance map.
func (b Balance) Clone() Balance {
	out := make(Balance, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}
