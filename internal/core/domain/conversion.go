package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConversionStatus is the lifecycle state of a conversion order.
// Transitions: pending -> processing -> {completed | failed}.
type ConversionStatus string

const (
	ConversionStatusPending    ConversionStatus = "pending"
	ConversionStatusProcessing ConversionStatus = "processing"
	ConversionStatusCompleted  ConversionStatus = "completed"
	ConversionStatusFailed     ConversionStatus = "failed"
)

// ConversionReserve is the BTC held back from MaxConvertibleAmount for fees.
var ConversionReserve = decimal.RequireFromString("0.0001")

// DefaultAutoConvertThreshold triggers auto-conversion at 0.001 BTC.
var DefaultAutoConvertThreshold = decimal.RequireFromString("0.001")

// ConversionFees itemizes the cost of a conversion order.
// Network is in BTC, Protocol in local-currency units, Total in BTC.
type ConversionFees struct {
	Network  decimal.Decimal `json:"network"`
	Protocol decimal.Decimal `json:"protocol"`
	Total    decimal.Decimal `json:"total"`
}

// ConversionOrder is a BTC to local-currency conversion. It is owned by the
// conversion orchestrator and immutable once its status is terminal.
type ConversionOrder struct {
	ID           uuid.UUID        `json:"id"`
	FromAmount   decimal.Decimal  `json:"from_amount"` // BTC
	ToAmount     decimal.Decimal  `json:"to_amount"`
	ToCurrency   string           `json:"to_currency"`
	Status       ConversionStatus `json:"status"`
	Route        []string         `json:"route"`
	Fees         ConversionFees   `json:"fees"`
	SettlementID string           `json:"settlement_id"`
	CountryID    string           `json:"country_id"`
	CreatedAt    time.Time        `json:"created_at"`
	CompletedAt  *time.Time       `json:"completed_at,omitempty"`
}

// IsTerminal returns true once the order reached a final state.
func (o *ConversionOrder) IsTerminal() bool {
	return o.Status == ConversionStatusCompleted || o.Status == ConversionStatusFailed
}

// TotalDebit is the ledger debit for this order: principal plus total fee, in BTC.
func (o *ConversionOrder) TotalDebit() decimal.Decimal {
	return o.FromAmount.Add(o.Fees.Total)
}

// ConversionRoute is the fixed settlement path for a corridor.
func ConversionRoute(localCurrency string) []string {
	return []string{"BTC", "USDT", localCurrency}
}

// AutoConvertPolicy is the persisted monitoring policy. A balance monitor
// outside the orchestrator watches incoming BTC and converts once the
// unconverted balance reaches Threshold.
type AutoConvertPolicy struct {
	Enabled   bool            `json:"enabled"`
	Threshold decimal.Decimal `json:"threshold"`
	CountryID string          `json:"country_id"`
	UpdatedAt time.Time       `json:"updated_at"`
}
