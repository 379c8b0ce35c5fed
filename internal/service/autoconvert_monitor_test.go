package service

import (
	"testing"
	"time"

	"voltx-wallet-engine/internal/core/domain"
	"voltx-wallet-engine/internal/core/ports"
	"voltx-wallet-engine/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type monitorTestDeps struct {
	monitor     *AutoConvertMonitor
	conversions *mocks.MockConversionService
	ledger      *mocks.MockBalanceLedger
	ctrl        *gomock.Controller
}

func setupMonitor(t *testing.T) *monitorTestDeps {
	ctrl := gomock.NewController(t)
	d := &monitorTestDeps{
		conversions: mocks.NewMockConversionService(ctrl),
		ledger:      mocks.NewMockBalanceLedger(ctrl),
		ctrl:        ctrl,
	}
	d.monitor = NewAutoConvertMonitor(d.conversions, d.ledger, time.Minute, zerolog.Nop())
	return d
}

func TestAutoConvertMonitor_Disabled(t *testing.T) {
	d := setupMonitor(t)
	defer d.ctrl.Finish()

	d.conversions.EXPECT().AutoConvertPolicy(gomock.Any()).
		Return(domain.AutoConvertPolicy{Enabled: false}, nil)

	// No balance read, no conversion.
	d.monitor.Tick()
}

func TestAutoConvertMonitor_BelowThreshold(t *testing.T) {
	d := setupMonitor(t)
	defer d.ctrl.Finish()

	d.conversions.EXPECT().AutoConvertPolicy(gomock.Any()).
		Return(domain.AutoConvertPolicy{
			Enabled:   true,
			Threshold: decimal.RequireFromString("0.001"),
			CountryID: "zm",
		}, nil)
	d.ledger.EXPECT().Balance(gomock.Any(), domain.CurrencyBTC).
		Return(decimal.RequireFromString("0.0005"), nil)

	d.monitor.Tick()
}

func TestAutoConvertMonitor_ConvertsAboveThreshold(t *testing.T) {
	d := setupMonitor(t)
	defer d.ctrl.Finish()

	d.conversions.EXPECT().AutoConvertPolicy(gomock.Any()).
		Return(domain.AutoConvertPolicy{
			Enabled:   true,
			Threshold: decimal.RequireFromString("0.001"),
			CountryID: "zm",
		}, nil)
	d.ledger.EXPECT().Balance(gomock.Any(), domain.CurrencyBTC).
		Return(decimal.RequireFromString("0.005"), nil)
	d.conversions.EXPECT().MaxConvertibleAmount(gomock.Any()).
		Return(decimal.RequireFromString("0.0049"), nil)
	d.conversions.EXPECT().Convert(gomock.Any(), ports.ConversionRequest{
		Amount:    decimal.RequireFromString("0.0049"),
		CountryID: "zm",
	}).Return(&domain.ConversionOrder{Status: domain.ConversionStatusCompleted}, nil)

	d.monitor.Tick()
}
