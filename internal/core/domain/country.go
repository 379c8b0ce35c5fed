package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Country describes a supported payout corridor.
type Country struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Currency       string          `json:"currency"`
	CurrencySymbol string          `json:"currency_symbol"`
	Flag           string          `json:"flag"`
	// USDRate is the reference USD->local rate used by the static provider.
	USDRate decimal.Decimal `json:"usd_rate"`
}

// LedgerCurrency is the ledger key for this country's local balance.
func (c Country) LedgerCurrency() string {
	return strings.ToLower(c.Currency)
}

// SouthernAfricanCountries is the supported payout catalog. Zambia first:
// it is the default corridor.
var SouthernAfricanCountries = []Country{
	{ID: "zm", Name: "Zambia", Currency: "ZMW", CurrencySymbol: "K", Flag: "🇿🇲", USDRate: decimal.RequireFromString("18.5")},
	{ID: "za", Name: "South Africa", Currency: "ZAR", CurrencySymbol: "R", Flag: "🇿🇦", USDRate: decimal.RequireFromString("18.2")},
	{ID: "bw", Name: "Botswana", Currency: "BWP", CurrencySymbol: "P", Flag: "🇧🇼", USDRate: decimal.RequireFromString("13.4")},
	{ID: "na", Name: "Namibia", Currency: "NAD", CurrencySymbol: "N$", Flag: "🇳🇦", USDRate: decimal.RequireFromString("18.2")},
	{ID: "sz", Name: "Eswatini", Currency: "SZL", CurrencySymbol: "E", Flag: "🇸🇿", USDRate: decimal.RequireFromString("18.2")},
	{ID: "ls", Name: "Lesotho", Currency: "LSL", CurrencySymbol: "L", Flag: "🇱🇸", USDRate: decimal.RequireFromString("18.2")},
	{ID: "mw", Name: "Malawi", Currency: "MWK", CurrencySymbol: "MK", Flag: "🇲🇼", USDRate: decimal.RequireFromString("1020")},
	{ID: "mz", Name: "Mozambique", Currency: "MZN", CurrencySymbol: "MT", Flag: "🇲🇿", USDRate: decimal.RequireFromString("63.8")},
}

// CountryByID looks up a country in the catalog. Returns nil if unknown.
func CountryByID(id string) *Country {
	for i := range SouthernAfricanCountries {
		if SouthernAfricanCountries[i].ID == id {
			return &SouthernAfricanCountries[i]
		}
	}
	return nil
}

// DefaultCountry returns the default payout corridor (Zambia).
func DefaultCountry() Country {
	return SouthernAfricanCountries[0]
}
