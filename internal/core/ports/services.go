package ports

import (
	"context"
	"time"

	"voltx-wallet-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Collaborator Ports (External Systems) ---

// NetworkBroadcaster submits a signed transfer to the Bitcoin network (or a
// Lightning route) and returns the network transaction hash.
type NetworkBroadcaster interface {
	Broadcast(ctx context.Context, transfer *domain.Transfer) (txHash string, err error)
}

// SettlementProvider executes the BTC -> USDT -> local leg of a conversion
// and returns the provider's settlement reference.
type SettlementProvider interface {
	Settle(ctx context.Context, order *domain.ConversionOrder) (settlementID string, err error)
}

// RateProvider fetches the two rate legs for a corridor from an external
// source. Implementations must not cache; the rate cache owns freshness.
type RateProvider interface {
	FetchRates(ctx context.Context, country domain.Country) (btcToUSD, usdToLocal decimal.Decimal, err error)
}

// BalanceLedger is the single source of truth for balances. TryDebit is
// atomic: it either applies the full debit or leaves the balance untouched.
type BalanceLedger interface {
	TryDebit(ctx context.Context, currency string, amount decimal.Decimal) error
	Credit(ctx context.Context, currency string, amount decimal.Decimal) error
	Balance(ctx context.Context, currency string) (decimal.Decimal, error)
	Balances(ctx context.Context) (domain.Balance, error)
}

// RateCache serves rate snapshots no older than the cache TTL, refreshing
// from the provider on expiry.
type RateCache interface {
	Snapshot(ctx context.Context, countryID string) (domain.RateSnapshot, error)
	Invalidate(countryID string)
}

// FeeCollector schedules fee routing to the collection address and keeps the
// append-only collection trail.
type FeeCollector interface {
	Schedule(ctx context.Context, transactionID uuid.UUID, amount decimal.Decimal, feeType domain.FeeType) error
	Records(ctx context.Context) ([]domain.FeeCollectionRecord, error)
	TotalCollected(ctx context.Context) (decimal.Decimal, error)
}

// HistoryStore records completed activity, most recent first.
type HistoryStore interface {
	RecordTransfer(ctx context.Context, transfer *domain.Transfer) error
	RecordConversion(ctx context.Context, order *domain.ConversionOrder) error
	Transfers(ctx context.Context, limit int) ([]domain.Transfer, error)
	Conversions(ctx context.Context, limit int) ([]domain.ConversionOrder, error)
}

// --- Service Ports (Business Logic) ---

// TransferService orchestrates outbound BTC transfers.
type TransferService interface {
	SendOnChain(ctx context.Context, req OnChainTransferRequest) (*domain.Transfer, error)
	SendLightning(ctx context.Context, req LightningTransferRequest) (*domain.Transfer, error)
	EstimateOnChainFee(rate domain.FeeRate) (fee decimal.Decimal, estimatedTime time.Duration, err error)
}

// OnChainTransferRequest holds validated input for an on-chain send.
type OnChainTransferRequest struct {
	ToAddress string
	Amount    decimal.Decimal
	FeeRate   domain.FeeRate
}

// LightningTransferRequest holds validated input for a Lightning send.
type LightningTransferRequest struct {
	ToAddress string
	Amount    decimal.Decimal
}

// ConversionService orchestrates BTC to local-currency conversions.
type ConversionService interface {
	Convert(ctx context.Context, req ConversionRequest) (*domain.ConversionOrder, error)
	MaxConvertibleAmount(ctx context.Context) (decimal.Decimal, error)
	QuoteConversion(ctx context.Context, req ConversionRequest) (*ConversionQuote, error)
	SetAutoConvert(ctx context.Context, policy domain.AutoConvertPolicy) error
	AutoConvertPolicy(ctx context.Context) (domain.AutoConvertPolicy, error)
}

// ConversionRequest holds validated input for a conversion.
type ConversionRequest struct {
	Amount    decimal.Decimal // BTC
	CountryID string
}

// ConversionQuote previews a conversion without executing it.
type ConversionQuote struct {
	FromAmount decimal.Decimal
	ToAmount   decimal.Decimal
	ToCurrency string
	Rate       domain.RateSnapshot
	Fees       domain.ConversionFees
}

// WalletService manages the wallet identity and aggregate views.
type WalletService interface {
	Initialize(ctx context.Context) (*domain.Wallet, error)
	Wallet(ctx context.Context) (*domain.Wallet, error)
	Overview(ctx context.Context) (*WalletOverview, error)
	SelectCountry(ctx context.Context, countryID string) error
}

// WalletOverview aggregates balances with their local-currency value.
type WalletOverview struct {
	Wallet     *domain.Wallet
	Balances   domain.Balance
	LocalValue decimal.Decimal
	Country    domain.Country
}

// SecurityService guards mutating operations with a PIN and session tokens.
type SecurityService interface {
	SetPIN(ctx context.Context, pin string) error
	VerifyPIN(ctx context.Context, pin string) (token string, expiresAt time.Time, err error)
	ValidateToken(tokenString string) error
}
