package service

import (
	"context"
	"time"

	"voltx-wallet-engine/internal/core/domain"
	"voltx-wallet-engine/internal/core/ports"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// AutoConvertMonitor watches the BTC balance and converts it to the policy's
// corridor once it crosses the threshold. It runs outside the conversion
// orchestrator on a fixed schedule.
type AutoConvertMonitor struct {
	conversions ports.ConversionService
	ledger      ports.BalanceLedger
	interval    time.Duration
	log         zerolog.Logger
	scheduler   gocron.Scheduler
}

// NewAutoConvertMonitor creates a new AutoConvertMonitor.
func NewAutoConvertMonitor(conversions ports.ConversionService, ledger ports.BalanceLedger, interval time.Duration, log zerolog.Logger) *AutoConvertMonitor {
	return &AutoConvertMonitor{
		conversions: conversions,
		ledger:      ledger,
		interval:    interval,
		log:         log,
	}
}

// Start schedules the balance check.
func (m *AutoConvertMonitor) Start() error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	if _, err := scheduler.NewJob(
		gocron.DurationJob(m.interval),
		gocron.NewTask(m.Tick),
	); err != nil {
		return err
	}
	m.scheduler = scheduler
	scheduler.Start()

	m.log.Info().Dur("interval", m.interval).Msg("auto-convert monitor started")
	return nil
}

// Stop shuts the scheduler down, waiting for a running check to finish.
func (m *AutoConvertMonitor) Stop() error {
	if m.scheduler == nil {
		return nil
	}
	return m.scheduler.Shutdown()
}

// Tick runs one balance check. Exported so a check can be forced without
// waiting for the schedule.
func (m *AutoConvertMonitor) Tick() {
	ctx := context.Background()

	policy, err := m.conversions.AutoConvertPolicy(ctx)
	if err != nil {
		m.log.Warn().Err(err).Msg("auto-convert policy load failed")
		return
	}
	if !policy.Enabled {
		return
	}

	balance, err := m.ledger.Balance(ctx, domain.CurrencyBTC)
	if err != nil {
		m.log.Warn().Err(err).Msg("auto-convert balance check failed")
		return
	}
	if balance.LessThan(policy.Threshold) {
		return
	}

	amount, err := m.conversions.MaxConvertibleAmount(ctx)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return
	}

	order, err := m.conversions.Convert(ctx, ports.ConversionRequest{
		Amount:    amount,
		CountryID: policy.CountryID,
	})
	if err != nil {
		m.log.Warn().Err(err).Str("amount", amount.String()).Msg("auto-convert failed")
		return
	}

	m.log.Info().
		Str("order_id", order.ID.String()).
		Str("amount", amount.String()).
		Str("country", policy.CountryID).
		Msg("auto-convert executed")
}
