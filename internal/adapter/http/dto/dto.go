// Package dto defines the HTTP request and response bodies. Amounts travel
// as decimal strings so no precision is lost on the wire.
package dto

import (
	"voltx-wallet-engine/internal/core/domain"
	"voltx-wallet-engine/internal/core/ports"

	"github.com/shopspring/decimal"
)

// --- Security ---

// SetPINRequest is the request body for configuring the wallet PIN.
type SetPINRequest struct {
	PIN string `json:"pin" binding:"required,min=4,max=8"`
}

// VerifyPINRequest is the request body for opening a session.
type VerifyPINRequest struct {
	PIN string `json:"pin" binding:"required"`
}

// SessionResponse is the response body for a verified PIN.
type SessionResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"` // Unix timestamp
}

// --- Wallet ---

// WalletResponse is the wallet identity.
type WalletResponse struct {
	BTCAddress       string `json:"btc_address"`
	LightningAddress string `json:"lightning_address"`
	CreatedAt        string `json:"created_at"`
}

// CountryResponse is one supported payout corridor.
type CountryResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Currency       string `json:"currency"`
	CurrencySymbol string `json:"currency_symbol"`
	Flag           string `json:"flag"`
}

// SelectCountryRequest switches the active payout corridor.
type SelectCountryRequest struct {
	CountryID string `json:"country_id" binding:"required"`
}

// OverviewResponse aggregates the wallet with its balances.
type OverviewResponse struct {
	Wallet     WalletResponse    `json:"wallet"`
	Balances   map[string]string `json:"balances"`
	LocalValue string            `json:"local_value"`
	Country    CountryResponse   `json:"country"`
}

// --- Transfers ---

// OnChainTransferRequest is the request body for an on-chain send.
type OnChainTransferRequest struct {
	ToAddress string          `json:"to_address" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	FeeRate   string          `json:"fee_rate,omitempty"` // slow, normal, fast
}

// LightningTransferRequest is the request body for a Lightning send.
type LightningTransferRequest struct {
	ToAddress string          `json:"to_address" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
}

// TransferResponse is the response body for transfer results.
type TransferResponse struct {
	ID               string  `json:"id"`
	Kind             string  `json:"kind"`
	FromAddress      string  `json:"from_address"`
	ToAddress        string  `json:"to_address"`
	Amount           string  `json:"amount"`
	Fee              string  `json:"fee"`
	Status           string  `json:"status"`
	TxHash           string  `json:"tx_hash,omitempty"`
	EstimatedSeconds int64   `json:"estimated_seconds"`
	CreatedAt        string  `json:"created_at"`
	ConfirmedAt      *string `json:"confirmed_at,omitempty"`
}

// FeeEstimateResponse previews the on-chain fee for a tier.
type FeeEstimateResponse struct {
	FeeRate          string `json:"fee_rate"`
	Fee              string `json:"fee"`
	EstimatedSeconds int64  `json:"estimated_seconds"`
}

// --- Conversions ---

// ConversionRequest is the request body for a BTC to local conversion.
type ConversionRequest struct {
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	CountryID string          `json:"country_id" binding:"required"`
}

// ConversionFeesResponse itemizes conversion costs.
type ConversionFeesResponse struct {
	Network  string `json:"network"`  // BTC
	Protocol string `json:"protocol"` // local units
	Total    string `json:"total"`    // BTC
}

// ConversionResponse is the response body for conversion results.
type ConversionResponse struct {
	ID           string                 `json:"id"`
	FromAmount   string                 `json:"from_amount"`
	ToAmount     string                 `json:"to_amount"`
	ToCurrency   string                 `json:"to_currency"`
	Status       string                 `json:"status"`
	Route        []string               `json:"route"`
	Fees         ConversionFeesResponse `json:"fees"`
	SettlementID string                 `json:"settlement_id,omitempty"`
	CountryID    string                 `json:"country_id"`
	CreatedAt    string                 `json:"created_at"`
	CompletedAt  *string                `json:"completed_at,omitempty"`
}

// QuoteResponse previews a conversion without executing it.
type QuoteResponse struct {
	FromAmount string                 `json:"from_amount"`
	ToAmount   string                 `json:"to_amount"`
	ToCurrency string                 `json:"to_currency"`
	Rate       RateSnapshotResponse   `json:"rate"`
	Fees       ConversionFeesResponse `json:"fees"`
}

// RateSnapshotResponse is one observation of the rate chain.
type RateSnapshotResponse struct {
	BTCToUSD   string `json:"btc_to_usd"`
	USDToLocal string `json:"usd_to_local"`
	BTCToLocal string `json:"btc_to_local"`
	FetchedAt  string `json:"fetched_at"`
	CountryID  string `json:"country_id"`
}

// MaxConvertibleResponse is the spendable BTC after the fee reserve.
type MaxConvertibleResponse struct {
	Amount string `json:"amount"`
}

// AutoConvertRequest updates the auto-convert policy.
type AutoConvertRequest struct {
	Enabled   bool             `json:"enabled"`
	Threshold *decimal.Decimal `json:"threshold,omitempty"`
	CountryID string           `json:"country_id,omitempty"`
}

// AutoConvertResponse is the persisted auto-convert policy.
type AutoConvertResponse struct {
	Enabled   bool   `json:"enabled"`
	Threshold string `json:"threshold"`
	CountryID string `json:"country_id"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// --- History ---

// FeeRecordResponse is one entry of the fee-collection trail.
type FeeRecordResponse struct {
	TransactionID     string `json:"transaction_id"`
	FeeAmount         string `json:"fee_amount"`
	FeeType           string `json:"fee_type"`
	CollectionAddress string `json:"collection_address"`
	Timestamp         string `json:"timestamp"`
	Status            string `json:"status"`
}

// FeeTotalResponse sums collected fees.
type FeeTotalResponse struct {
	TotalCollected string `json:"total_collected"`
	Currency       string `json:"currency"`
}

// ArchiveStatsResponse reports long-term archive row counts.
type ArchiveStatsResponse struct {
	Transfers   int64 `json:"transfers"`
	Conversions int64 `json:"conversions"`
}

// --- Converters ---

const timeLayout = "2006-01-02T15:04:05Z07:00"

// FromTransfer converts domain.Transfer to DTO.
func FromTransfer(t *domain.Transfer) TransferResponse {
	resp := TransferResponse{
		ID:               t.ID.String(),
		Kind:             string(t.Kind),
		FromAddress:      t.FromAddress,
		ToAddress:        t.ToAddress,
		Amount:           t.Amount.String(),
		Fee:              t.Fee.String(),
		Status:           string(t.Status),
		TxHash:           t.TxHash,
		EstimatedSeconds: int64(t.EstimatedTime.Seconds()),
		CreatedAt:        t.CreatedAt.Format(timeLayout),
	}
	if t.ConfirmedAt != nil {
		s := t.ConfirmedAt.Format(timeLayout)
		resp.ConfirmedAt = &s
	}
	return resp
}

// FromConversion converts domain.ConversionOrder to DTO.
func FromConversion(o *domain.ConversionOrder) ConversionResponse {
	resp := ConversionResponse{
		ID:           o.ID.String(),
		FromAmount:   o.FromAmount.String(),
		ToAmount:     o.ToAmount.String(),
		ToCurrency:   o.ToCurrency,
		Status:       string(o.Status),
		Route:        o.Route,
		Fees:         FromConversionFees(o.Fees),
		SettlementID: o.SettlementID,
		CountryID:    o.CountryID,
		CreatedAt:    o.CreatedAt.Format(timeLayout),
	}
	if o.CompletedAt != nil {
		s := o.CompletedAt.Format(timeLayout)
		resp.CompletedAt = &s
	}
	return resp
}

// FromConversionFees converts domain.ConversionFees to DTO.
func FromConversionFees(f domain.ConversionFees) ConversionFeesResponse {
	return ConversionFeesResponse{
		Network:  f.Network.String(),
		Protocol: f.Protocol.String(),
		Total:    f.Total.String(),
	}
}

// FromRateSnapshot converts domain.RateSnapshot to DTO.
func FromRateSnapshot(s domain.RateSnapshot) RateSnapshotResponse {
	return RateSnapshotResponse{
		BTCToUSD:   s.BTCToUSD.String(),
		USDToLocal: s.USDToLocal.String(),
		BTCToLocal: s.BTCToLocal.String(),
		FetchedAt:  s.FetchedAt.Format(timeLayout),
		CountryID:  s.CountryID,
	}
}

// FromWallet converts domain.Wallet to DTO.
func FromWallet(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		BTCAddress:       w.BTCAddress,
		LightningAddress: w.LightningAddress,
		CreatedAt:        w.CreatedAt.Format(timeLayout),
	}
}

// FromCountry converts domain.Country to DTO.
func FromCountry(c domain.Country) CountryResponse {
	return CountryResponse{
		ID:             c.ID,
		Name:           c.Name,
		Currency:       c.Currency,
		CurrencySymbol: c.CurrencySymbol,
		Flag:           c.Flag,
	}
}

// FromOverview converts ports.WalletOverview to DTO.
func FromOverview(o *ports.WalletOverview) OverviewResponse {
	balances := make(map[string]string, len(o.Balances))
	for currency, amount := range o.Balances {
		balances[currency] = amount.String()
	}
	return OverviewResponse{
		Wallet:     FromWallet(o.Wallet),
		Balances:   balances,
		LocalValue: o.LocalValue.String(),
		Country:    FromCountry(o.Country),
	}
}

// FromFeeRecord converts domain.FeeCollectionRecord to DTO.
func FromFeeRecord(r domain.FeeCollectionRecord) FeeRecordResponse {
	return FeeRecordResponse{
		TransactionID:     r.TransactionID.String(),
		FeeAmount:         r.FeeAmount.String(),
		FeeType:           string(r.FeeType),
		CollectionAddress: r.CollectionAddress,
		Timestamp:         r.Timestamp.Format(timeLayout),
		Status:            string(r.Status),
	}
}

// FromAutoConvertPolicy converts domain.AutoConvertPolicy to DTO.
func FromAutoConvertPolicy(p domain.AutoConvertPolicy) AutoConvertResponse {
	resp := AutoConvertResponse{
		Enabled:   p.Enabled,
		Threshold: p.Threshold.String(),
		CountryID: p.CountryID,
	}
	if !p.UpdatedAt.IsZero() {
		resp.UpdatedAt = p.UpdatedAt.Format(timeLayout)
	}
	return resp
}
