package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferKind distinguishes on-chain from Lightning payments.
type TransferKind string

const (
	TransferKindOnChain   TransferKind = "onchain"
	TransferKindLightning TransferKind = "lightning"
)

// TransferStatus is the lifecycle state of an outbound transfer.
// Transitions: pending -> broadcasting -> {confirmed | failed}.
type TransferStatus string

const (
	TransferStatusPending      TransferStatus = "pending"
	TransferStatusBroadcasting TransferStatus = "broadcasting"
	TransferStatusConfirmed    TransferStatus = "confirmed"
	TransferStatusFailed       TransferStatus = "failed"
)

// FeeRate selects the on-chain fee tier.
type FeeRate string

const (
	FeeRateSlow   FeeRate = "slow"
	FeeRateNormal FeeRate = "normal"
	FeeRateFast   FeeRate = "fast"
)

// Valid reports whether the fee rate is one of the known tiers.
func (r FeeRate) Valid() bool {
	switch r {
	case FeeRateSlow, FeeRateNormal, FeeRateFast:
		return true
	}
	return false
}

// Fee schedule. Amounts in BTC.
var (
	// BaseNetworkFee is the minimum on-chain network fee (1000 sats).
	BaseNetworkFee = decimal.RequireFromString("0.00001")
	// ProtocolFeeRate is the 0.5% service fee applied to every value move.
	ProtocolFeeRate = decimal.RequireFromString("0.005")
	// LightningFeeRate is the 0.1% routing fee for Lightning sends.
	LightningFeeRate = decimal.RequireFromString("0.001")
	// LightningMinFee is the routing fee floor (100 sats).
	LightningMinFee = decimal.RequireFromString("0.000001")
)

var feeRateMultiplier = map[FeeRate]decimal.Decimal{
	FeeRateSlow:   decimal.NewFromInt(1),
	FeeRateNormal: decimal.RequireFromString("1.5"),
	FeeRateFast:   decimal.RequireFromString("2.5"),
}

// OnChainNetworkFee returns the network fee for a tier, never below the base fee.
func OnChainNetworkFee(rate FeeRate) decimal.Decimal {
	fee := BaseNetworkFee.Mul(feeRateMultiplier[rate])
	if fee.LessThan(BaseNetworkFee) {
		return BaseNetworkFee
	}
	return fee
}

// ProtocolFee returns the 0.5% service fee for an amount.
func ProtocolFee(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(ProtocolFeeRate)
}

// LightningNetworkFee returns the routing fee for a Lightning send,
// max(amount*0.1%, 100 sats).
func LightningNetworkFee(amount decimal.Decimal) decimal.Decimal {
	fee := amount.Mul(LightningFeeRate)
	if fee.LessThan(LightningMinFee) {
		return LightningMinFee
	}
	return fee
}

// EstimatedConfirmation returns the advisory confirmation time per tier.
// It never gates the state machine.
func EstimatedConfirmation(rate FeeRate) time.Duration {
	switch rate {
	case FeeRateSlow:
		return time.Hour
	case FeeRateFast:
		return 10 * time.Minute
	default:
		return 30 * time.Minute
	}
}

// LightningConfirmation is the advisory settle time for Lightning sends.
const LightningConfirmation = 5 * time.Second

// Transfer is a single outbound Bitcoin payment. It is owned by the
// transfer orchestrator and immutable once its status is terminal.
type Transfer struct {
	ID            uuid.UUID       `json:"id"`
	Kind          TransferKind    `json:"kind"`
	FromAddress   string          `json:"from_address"`
	ToAddress     string          `json:"to_address"`
	Amount        decimal.Decimal `json:"amount"`
	Fee           decimal.Decimal `json:"fee"`
	Status        TransferStatus  `json:"status"`
	TxHash        string          `json:"tx_hash,omitempty"`
	EstimatedTime time.Duration   `json:"estimated_time"`
	CreatedAt     time.Time       `json:"created_at"`
	ConfirmedAt   *time.Time      `json:"confirmed_at,omitempty"`
}

// IsTerminal returns true once the transfer reached a final state.
func (t *Transfer) IsTerminal() bool {
	return t.Status == TransferStatusConfirmed || t.Status == TransferStatusFailed
}

// TotalDebit is the ledger debit for this transfer: amount plus fee.
func (t *Transfer) TotalDebit() decimal.Decimal {
	return t.Amount.Add(t.Fee)
}
