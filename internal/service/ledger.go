package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"voltx-wallet-engine/internal/core/domain"
	"voltx-wallet-engine/internal/core/ports"
	"voltx-wallet-engine/pkg/apperror"
	"voltx-wallet-engine/pkg/metrics"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const balancesKey = "wallet:balances"

// BalanceLedgerImpl implements ports.BalanceLedger. It keeps the working set
// in memory under a single mutex and writes through to the key-value store.
// The mutex makes check-and-debit atomic: concurrent debits serialize, and a
// debit that would overdraw leaves the balance untouched.
type BalanceLedgerImpl struct {
	kv  ports.KeyValueStore
	met *metrics.Metrics
	log zerolog.Logger

	mu       sync.Mutex
	balances domain.Balance
	loaded   bool
}

// NewBalanceLedger creates a new BalanceLedgerImpl. Balances are loaded from
// the store lazily on first use.
func NewBalanceLedger(kv ports.KeyValueStore, met *metrics.Metrics, log zerolog.Logger) *BalanceLedgerImpl {
	return &BalanceLedgerImpl{
		kv:       kv,
		met:      met,
		log:      log,
		balances: domain.Balance{},
	}
}

// TryDebit atomically debits amount from currency. It fails without side
// effects when the balance is insufficient or the write-through fails.
func (l *BalanceLedgerImpl) TryDebit(ctx context.Context, currency string, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return apperror.ErrInvalidAmount()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.ensureLoaded(ctx); err != nil {
		return err
	}

	current := l.balances.Get(currency)
	if current.LessThan(amount) {
		return apperror.ErrInsufficientFunds()
	}

	l.balances[currency] = current.Sub(amount)
	if err := l.persistLocked(ctx); err != nil {
		// Revert so the in-memory view never diverges from the store.
		l.balances[currency] = current
		return apperror.ErrPersistence(fmt.Errorf("persist debit: %w", err))
	}

	l.observeLocked(currency)
	return nil
}

// Credit adds amount to currency. The credit is kept even when the
// write-through fails; the store catches up on the next successful write.
func (l *BalanceLedgerImpl) Credit(ctx context.Context, currency string, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return apperror.ErrInvalidAmount()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.ensureLoaded(ctx); err != nil {
		return err
	}

	l.balances[currency] = l.balances.Get(currency).Add(amount)
	if err := l.persistLocked(ctx); err != nil {
		l.log.Warn().Err(err).Str("currency", currency).Msg("credit persisted in memory only")
	}

	l.observeLocked(currency)
	return nil
}

// Balance returns the balance for one currency (zero when never credited).
func (l *BalanceLedgerImpl) Balance(ctx context.Context, currency string) (decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.ensureLoaded(ctx); err != nil {
		return decimal.Zero, err
	}
	return l.balances.Get(currency), nil
}

// Balances returns a copy of all balances.
func (l *BalanceLedgerImpl) Balances(ctx context.Context) (domain.Balance, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return l.balances.Clone(), nil
}

func (l *BalanceLedgerImpl) ensureLoaded(ctx context.Context) error {
	if l.loaded {
		return nil
	}
	data, err := l.kv.Get(ctx, balancesKey)
	if err != nil {
		return apperror.ErrPersistence(fmt.Errorf("load balances: %w", err))
	}
	if data != nil {
		if err := json.Unmarshal(data, &l.balances); err != nil {
			return apperror.ErrPersistence(fmt.Errorf("decode balances: %w", err))
		}
	}
	l.loaded = true
	return nil
}

func (l *BalanceLedgerImpl) persistLocked(ctx context.Context) error {
	data, err := json.Marshal(l.balances)
	if err != nil {
		return err
	}
	return l.kv.Set(ctx, balancesKey, data)
}

func (l *BalanceLedgerImpl) observeLocked(currency string) {
	if l.met == nil {
		return
	}
	v, _ := l.balances.Get(currency).Float64()
	l.met.BalanceGauge.WithLabelValues(currency).Set(v)
}
