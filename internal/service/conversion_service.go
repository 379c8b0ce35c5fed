package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"voltx-wallet-engine/internal/core/domain"
	"voltx-wallet-engine/internal/core/ports"
	"voltx-wallet-engine/pkg/apperror"
	"voltx-wallet-engine/pkg/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const autoConvertKey = "auto_convert_settings"

// ConversionServiceImpl implements ports.ConversionService.
//
// A conversion reserves principal plus total fee in a single atomic debit,
// then delegates settlement under a bounded timeout. Failure or timeout
// credits the whole reservation back; the local balance is only credited
// after the provider settles.
type ConversionServiceImpl struct {
	ledger     ports.BalanceLedger
	rates      ports.RateCache
	fees       ports.FeeCollector
	history    ports.HistoryStore
	archive    ports.ArchiveRepository // optional, best effort
	settlement ports.SettlementProvider
	kv         ports.KeyValueStore
	timeout    time.Duration
	met        *metrics.Metrics
	log        zerolog.Logger
}

// NewConversionService creates a new ConversionServiceImpl.
func NewConversionService(
	ledger ports.BalanceLedger,
	rates ports.RateCache,
	fees ports.FeeCollector,
	history ports.HistoryStore,
	archive ports.ArchiveRepository,
	settlement ports.SettlementProvider,
	kv ports.KeyValueStore,
	timeout time.Duration,
	met *metrics.Metrics,
	log zerolog.Logger,
) *ConversionServiceImpl {
	return &ConversionServiceImpl{
		ledger:     ledger,
		rates:      rates,
		fees:       fees,
		history:    history,
		archive:    archive,
		settlement: settlement,
		kv:         kv,
		timeout:    timeout,
		met:        met,
		log:        log,
	}
}

// QuoteConversion prices a conversion at the current rate without executing it.
func (s *ConversionServiceImpl) QuoteConversion(ctx context.Context, req ports.ConversionRequest) (*ports.ConversionQuote, error) {
	order, snap, err := s.buildOrder(ctx, req)
	if err != nil {
		return nil, err
	}
	return &ports.ConversionQuote{
		FromAmount: order.FromAmount,
		ToAmount:   order.ToAmount,
		ToCurrency: order.ToCurrency,
		Rate:       snap,
		Fees:       order.Fees,
	}, nil
}

// Convert converts BTC into the corridor's local currency.
func (s *ConversionServiceImpl) Convert(ctx context.Context, req ports.ConversionRequest) (*domain.ConversionOrder, error) {
	order, _, err := s.buildOrder(ctx, req)
	if err != nil {
		return nil, err
	}
	country := domain.CountryByID(order.CountryID)

	if err := s.ledger.TryDebit(ctx, domain.CurrencyBTC, order.TotalDebit()); err != nil {
		return nil, err
	}

	order.Status = domain.ConversionStatusProcessing
	s.log.Info().
		Str("order_id", order.ID.String()).
		Str("from_amount", order.FromAmount.String()).
		Str("to_currency", order.ToCurrency).
		Msg("settling conversion")

	type settleResult struct {
		settlementID string
		err          error
	}

	sctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resultCh := make(chan settleResult, 1)
	go func() {
		id, err := s.settlement.Settle(sctx, order)
		resultCh <- settleResult{settlementID: id, err: err}
	}()

	select {
	case res := <-resultCh:
		if res.err != nil {
			return nil, s.fail(ctx, order, apperror.ErrSettlementFailed(res.err))
		}
		return s.complete(ctx, order, country, res.settlementID)
	case <-sctx.Done():
		return nil, s.fail(ctx, order, apperror.ErrDelegationTimeout())
	}
}

// MaxConvertibleAmount is the BTC balance minus the fee reserve, never negative.
func (s *ConversionServiceImpl) MaxConvertibleAmount(ctx context.Context) (decimal.Decimal, error) {
	balance, err := s.ledger.Balance(ctx, domain.CurrencyBTC)
	if err != nil {
		return decimal.Zero, err
	}
	max := balance.Sub(domain.ConversionReserve)
	if max.IsNegative() {
		return decimal.Zero, nil
	}
	return max, nil
}

// SetAutoConvert stores the auto-conversion policy. Disabling removes it.
func (s *ConversionServiceImpl) SetAutoConvert(ctx context.Context, policy domain.AutoConvertPolicy) error {
	if !policy.Enabled {
		if err := s.kv.Delete(ctx, autoConvertKey); err != nil {
			return apperror.ErrPersistence(fmt.Errorf("clear auto-convert: %w", err))
		}
		s.log.Info().Msg("auto-convert disabled")
		return nil
	}

	if policy.Threshold.LessThanOrEqual(decimal.Zero) {
		return apperror.Validation("Auto-convert threshold must be greater than zero")
	}
	if domain.CountryByID(policy.CountryID) == nil {
		return apperror.ErrUnknownCountry(policy.CountryID)
	}

	policy.UpdatedAt = time.Now()
	data, err := json.Marshal(policy)
	if err != nil {
		return apperror.ErrPersistence(fmt.Errorf("encode auto-convert: %w", err))
	}
	if err := s.kv.Set(ctx, autoConvertKey, data); err != nil {
		return apperror.ErrPersistence(fmt.Errorf("save auto-convert: %w", err))
	}

	s.log.Info().
		Str("threshold", policy.Threshold.String()).
		Str("country", policy.CountryID).
		Msg("auto-convert enabled")
	return nil
}

// AutoConvertPolicy returns the stored policy, or a disabled default.
func (s *ConversionServiceImpl) AutoConvertPolicy(ctx context.Context) (domain.AutoConvertPolicy, error) {
	data, err := s.kv.Get(ctx, autoConvertKey)
	if err != nil {
		return domain.AutoConvertPolicy{}, apperror.ErrPersistence(fmt.Errorf("load auto-convert: %w", err))
	}
	if data == nil {
		return domain.AutoConvertPolicy{
			Enabled:   false,
			Threshold: domain.DefaultAutoConvertThreshold,
			CountryID: domain.DefaultCountry().ID,
		}, nil
	}
	var policy domain.AutoConvertPolicy
	if err := json.Unmarshal(data, &policy); err != nil {
		return domain.AutoConvertPolicy{}, apperror.ErrPersistence(fmt.Errorf("decode auto-convert: %w", err))
	}
	return policy, nil
}

// buildOrder validates the request and prices a pending order at the current
// snapshot. The network fee is flat; the protocol fee is charged on the local
// amount and folded back into BTC for the total.
func (s *ConversionServiceImpl) buildOrder(ctx context.Context, req ports.ConversionRequest) (*domain.ConversionOrder, domain.RateSnapshot, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.RateSnapshot{}, apperror.ErrInvalidAmount()
	}
	country := domain.CountryByID(req.CountryID)
	if country == nil {
		return nil, domain.RateSnapshot{}, apperror.ErrUnknownCountry(req.CountryID)
	}

	snap, err := s.rates.Snapshot(ctx, country.ID)
	if err != nil {
		return nil, domain.RateSnapshot{}, err
	}

	localAmount := req.Amount.Mul(snap.BTCToLocal)
	networkFee := domain.BaseNetworkFee
	protocolFee := domain.ProtocolFee(localAmount)
	totalFee := networkFee.Add(protocolFee.Div(snap.BTCToLocal))

	order := &domain.ConversionOrder{
		ID:         uuid.New(),
		FromAmount: req.Amount,
		ToAmount:   localAmount,
		ToCurrency: country.Currency,
		Status:     domain.ConversionStatusPending,
		Route:      domain.ConversionRoute(country.Currency),
		Fees: domain.ConversionFees{
			Network:  networkFee,
			Protocol: protocolFee,
			Total:    totalFee,
		},
		CountryID: country.ID,
		CreatedAt: time.Now(),
	}
	return order, snap, nil
}

func (s *ConversionServiceImpl) complete(ctx context.Context, order *domain.ConversionOrder, country *domain.Country, settlementID string) (*domain.ConversionOrder, error) {
	now := time.Now()
	order.SettlementID = settlementID
	order.Status = domain.ConversionStatusCompleted
	order.CompletedAt = &now

	if err := s.ledger.Credit(ctx, country.LedgerCurrency(), order.ToAmount); err != nil {
		s.log.Error().Err(err).
			Str("order_id", order.ID.String()).
			Str("currency", country.LedgerCurrency()).
			Msg("local credit failed after settlement")
	}
	if err := s.fees.Schedule(ctx, order.ID, order.Fees.Total, domain.FeeTypeConversion); err != nil {
		s.log.Warn().Err(err).Str("order_id", order.ID.String()).Msg("conversion fee collection failed")
	}
	s.finish(ctx, order)

	s.log.Info().
		Str("order_id", order.ID.String()).
		Str("settlement_id", settlementID).
		Str("to_amount", order.ToAmount.String()).
		Msg("conversion completed")
	return order, nil
}

// fail marks the order failed and credits the reservation back.
func (s *ConversionServiceImpl) fail(ctx context.Context, order *domain.ConversionOrder, cause error) error {
	order.Status = domain.ConversionStatusFailed

	if err := s.ledger.Credit(ctx, domain.CurrencyBTC, order.TotalDebit()); err != nil {
		s.log.Error().Err(err).
			Str("order_id", order.ID.String()).
			Str("amount", order.TotalDebit().String()).
			Msg("compensating credit failed, reservation stuck")
	}
	s.finish(ctx, order)

	s.log.Warn().Err(cause).
		Str("order_id", order.ID.String()).
		Msg("conversion failed")
	return cause
}

func (s *ConversionServiceImpl) finish(ctx context.Context, order *domain.ConversionOrder) {
	if err := s.history.RecordConversion(ctx, order); err != nil {
		s.log.Warn().Err(err).Str("order_id", order.ID.String()).Msg("history write failed")
	}
	if s.archive != nil {
		if err := s.archive.ArchiveConversion(ctx, order); err != nil {
			s.log.Warn().Err(err).Str("order_id", order.ID.String()).Msg("archive write failed")
		}
	}
	if s.met != nil {
		s.met.ConversionsTotal.WithLabelValues(string(order.Status)).Inc()
	}
}
