package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"voltx-wallet-engine/internal/core/domain"
	"voltx-wallet-engine/internal/core/ports"
	"voltx-wallet-engine/internal/core/ports/mocks"
	"voltx-wallet-engine/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type conversionTestDeps struct {
	svc        *ConversionServiceImpl
	ledger     *mocks.MockBalanceLedger
	rates      *mocks.MockRateCache
	fees       *mocks.MockFeeCollector
	history    *mocks.MockHistoryStore
	settlement *mocks.MockSettlementProvider
	kv         *memKV
	ctrl       *gomock.Controller
}

func setupConversionService(t *testing.T, timeout time.Duration) *conversionTestDeps {
	ctrl := gomock.NewController(t)
	d := &conversionTestDeps{
		ledger:     mocks.NewMockBalanceLedger(ctrl),
		rates:      mocks.NewMockRateCache(ctrl),
		fees:       mocks.NewMockFeeCollector(ctrl),
		history:    mocks.NewMockHistoryStore(ctrl),
		settlement: mocks.NewMockSettlementProvider(ctrl),
		kv:         newMemKV(),
		ctrl:       ctrl,
	}
	d.svc = NewConversionService(
		d.ledger, d.rates, d.fees, d.history, nil,
		d.settlement, d.kv, timeout, nil, zerolog.Nop(),
	)
	return d
}

func zambiaSnapshot() domain.RateSnapshot {
	return domain.NewRateSnapshot("zm",
		decimal.NewFromInt(45000), decimal.RequireFromString("18.5"), time.Now())
}

// ==================== Convert Tests ====================

func TestConversionService_Convert_Success(t *testing.T) {
	d := setupConversionService(t, time.Second)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.rates.EXPECT().Snapshot(ctx, "zm").Return(zambiaSnapshot(), nil)
	// 0.01 BTC at 832500: local 8325, protocol fee 41.625 ZMW,
	// total fee 0.00001 + 41.625/832500 = 0.00006 BTC.
	d.ledger.EXPECT().TryDebit(ctx, domain.CurrencyBTC, decEq("0.01006")).Return(nil)
	d.settlement.EXPECT().Settle(gomock.Any(), gomock.Any()).Return("yaki_42", nil)
	d.ledger.EXPECT().Credit(ctx, "zmw", decEq("8325")).Return(nil)
	d.fees.EXPECT().Schedule(ctx, gomock.Any(), decEq("0.00006"), domain.FeeTypeConversion).Return(nil)
	d.history.EXPECT().RecordConversion(ctx, gomock.Any()).Return(nil)

	order, err := d.svc.Convert(ctx, ports.ConversionRequest{
		Amount:    decimal.RequireFromString("0.01"),
		CountryID: "zm",
	})
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, domain.ConversionStatusCompleted, order.Status)
	assert.Equal(t, "ZMW", order.ToCurrency)
	assert.Equal(t, []string{"BTC", "USDT", "ZMW"}, order.Route)
	assert.Equal(t, "yaki_42", order.SettlementID)
	assert.True(t, order.ToAmount.Equal(decimal.NewFromInt(8325)))
	assert.True(t, order.Fees.Network.Equal(decimal.RequireFromString("0.00001")))
	assert.True(t, order.Fees.Protocol.Equal(decimal.RequireFromString("41.625")))
	assert.True(t, order.Fees.Total.Equal(decimal.RequireFromString("0.00006")))
	assert.NotNil(t, order.CompletedAt)
}

func TestConversionService_Convert_InvalidAmount(t *testing.T) {
	d := setupConversionService(t, time.Second)
	defer d.ctrl.Finish()

	_, err := d.svc.Convert(context.Background(), ports.ConversionRequest{
		Amount:    decimal.Zero,
		CountryID: "zm",
	})
	assertAppError(t, err, "VAL_001")
}

func TestConversionService_Convert_UnknownCountry(t *testing.T) {
	d := setupConversionService(t, time.Second)
	defer d.ctrl.Finish()

	_, err := d.svc.Convert(context.Background(), ports.ConversionRequest{
		Amount:    decimal.RequireFromString("0.01"),
		CountryID: "xx",
	})
	assertAppError(t, err, "VAL_004")
}

func TestConversionService_Convert_RateUnavailable(t *testing.T) {
	d := setupConversionService(t, time.Second)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.rates.EXPECT().Snapshot(ctx, "zm").
		Return(domain.RateSnapshot{}, apperror.ErrRateUnavailable(errors.New("provider down")))

	// No debit happens when the quote cannot be priced.
	_, err := d.svc.Convert(ctx, ports.ConversionRequest{
		Amount:    decimal.RequireFromString("0.01"),
		CountryID: "zm",
	})
	assertAppError(t, err, "NET_003")
}

func TestConversionService_Convert_InsufficientFunds(t *testing.T) {
	d := setupConversionService(t, time.Second)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.rates.EXPECT().Snapshot(ctx, "zm").Return(zambiaSnapshot(), nil)
	d.ledger.EXPECT().TryDebit(ctx, domain.CurrencyBTC, gomock.Any()).
		Return(apperror.ErrInsufficientFunds())

	_, err := d.svc.Convert(ctx, ports.ConversionRequest{
		Amount:    decimal.RequireFromString("0.01"),
		CountryID: "zm",
	})
	assertAppError(t, err, "FUNDS_001")
}

func TestConversionService_Convert_SettlementFailureRefunds(t *testing.T) {
	d := setupConversionService(t, time.Second)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.rates.EXPECT().Snapshot(ctx, "zm").Return(zambiaSnapshot(), nil)
	d.ledger.EXPECT().TryDebit(ctx, domain.CurrencyBTC, decEq("0.01006")).Return(nil)
	d.settlement.EXPECT().Settle(gomock.Any(), gomock.Any()).
		Return("", errors.New("no liquidity"))
	d.ledger.EXPECT().Credit(ctx, domain.CurrencyBTC, decEq("0.01006")).Return(nil)
	d.history.EXPECT().RecordConversion(ctx, gomock.Any()).
		Do(func(_ context.Context, order *domain.ConversionOrder) {
			assert.Equal(t, domain.ConversionStatusFailed, order.Status)
		}).
		Return(nil)

	_, err := d.svc.Convert(ctx, ports.ConversionRequest{
		Amount:    decimal.RequireFromString("0.01"),
		CountryID: "zm",
	})
	assertAppError(t, err, "NET_002")
}

func TestConversionService_Convert_TimeoutRefunds(t *testing.T) {
	d := setupConversionService(t, 20*time.Millisecond)
	defer d.ctrl.Finish()
	ctx := context.Background()

	release := make(chan struct{})
	done := make(chan struct{})

	d.rates.EXPECT().Snapshot(ctx, "zm").Return(zambiaSnapshot(), nil)
	d.ledger.EXPECT().TryDebit(ctx, domain.CurrencyBTC, gomock.Any()).Return(nil)
	d.settlement.EXPECT().Settle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *domain.ConversionOrder) (string, error) {
			<-release
			close(done)
			return "", errors.New("too late")
		})
	d.ledger.EXPECT().Credit(ctx, domain.CurrencyBTC, gomock.Any()).Return(nil)
	d.history.EXPECT().RecordConversion(ctx, gomock.Any()).Return(nil)

	_, err := d.svc.Convert(ctx, ports.ConversionRequest{
		Amount:    decimal.RequireFromString("0.01"),
		CountryID: "zm",
	})
	assertAppError(t, err, "NET_004")

	close(release)
	<-done
}

// ==================== Quote & MaxConvertible Tests ====================

func TestConversionService_QuoteConversion(t *testing.T) {
	d := setupConversionService(t, time.Second)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.rates.EXPECT().Snapshot(ctx, "zm").Return(zambiaSnapshot(), nil)

	quote, err := d.svc.QuoteConversion(ctx, ports.ConversionRequest{
		Amount:    decimal.RequireFromString("0.01"),
		CountryID: "zm",
	})
	require.NoError(t, err)
	assert.True(t, quote.ToAmount.Equal(decimal.NewFromInt(8325)))
	assert.Equal(t, "ZMW", quote.ToCurrency)
	assert.True(t, quote.Fees.Total.Equal(decimal.RequireFromString("0.00006")))
}

func TestConversionService_MaxConvertibleAmount(t *testing.T) {
	d := setupConversionService(t, time.Second)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.ledger.EXPECT().Balance(ctx, domain.CurrencyBTC).
		Return(decimal.RequireFromString("0.5"), nil)

	max, err := d.svc.MaxConvertibleAmount(ctx)
	require.NoError(t, err)
	assert.True(t, max.Equal(decimal.RequireFromString("0.4999")))
}

func TestConversionService_MaxConvertibleAmount_NeverNegative(t *testing.T) {
	d := setupConversionService(t, time.Second)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.ledger.EXPECT().Balance(ctx, domain.CurrencyBTC).
		Return(decimal.RequireFromString("0.00005"), nil)

	max, err := d.svc.MaxConvertibleAmount(ctx)
	require.NoError(t, err)
	assert.True(t, max.IsZero())
}

// ==================== Auto-Convert Policy Tests ====================

func TestConversionService_AutoConvertRoundTrip(t *testing.T) {
	d := setupConversionService(t, time.Second)
	defer d.ctrl.Finish()
	ctx := context.Background()

	require.NoError(t, d.svc.SetAutoConvert(ctx, domain.AutoConvertPolicy{
		Enabled:   true,
		Threshold: decimal.RequireFromString("0.002"),
		CountryID: "mw",
	}))

	policy, err := d.svc.AutoConvertPolicy(ctx)
	require.NoError(t, err)
	assert.True(t, policy.Enabled)
	assert.True(t, policy.Threshold.Equal(decimal.RequireFromString("0.002")))
	assert.Equal(t, "mw", policy.CountryID)
	assert.False(t, policy.UpdatedAt.IsZero())
}

func TestConversionService_AutoConvertDefault(t *testing.T) {
	d := setupConversionService(t, time.Second)
	defer d.ctrl.Finish()

	policy, err := d.svc.AutoConvertPolicy(context.Background())
	require.NoError(t, err)
	assert.False(t, policy.Enabled)
	assert.True(t, policy.Threshold.Equal(domain.DefaultAutoConvertThreshold))
	assert.Equal(t, "zm", policy.CountryID)
}

func TestConversionService_AutoConvertDisableClears(t *testing.T) {
	d := setupConversionService(t, time.Second)
	defer d.ctrl.Finish()
	ctx := context.Background()

	require.NoError(t, d.svc.SetAutoConvert(ctx, domain.AutoConvertPolicy{
		Enabled:   true,
		Threshold: decimal.RequireFromString("0.002"),
		CountryID: "zm",
	}))
	require.NoError(t, d.svc.SetAutoConvert(ctx, domain.AutoConvertPolicy{Enabled: false}))

	policy, err := d.svc.AutoConvertPolicy(ctx)
	require.NoError(t, err)
	assert.False(t, policy.Enabled)
}

func TestConversionService_AutoConvertValidation(t *testing.T) {
	d := setupConversionService(t, time.Second)
	defer d.ctrl.Finish()
	ctx := context.Background()

	err := d.svc.SetAutoConvert(ctx, domain.AutoConvertPolicy{
		Enabled:   true,
		Threshold: decimal.Zero,
		CountryID: "zm",
	})
	assertAppError(t, err, "VAL_001")

	err = d.svc.SetAutoConvert(ctx, domain.AutoConvertPolicy{
		Enabled:   true,
		Threshold: decimal.RequireFromString("0.001"),
		CountryID: "xx",
	})
	assertAppError(t, err, "VAL_004")
}
