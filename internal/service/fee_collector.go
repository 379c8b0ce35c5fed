package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"voltx-wallet-engine/internal/core/domain"
	"voltx-wallet-engine/internal/core/ports"
	"voltx-wallet-engine/pkg/apperror"
	"voltx-wallet-engine/pkg/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	feeHistoryKey = "fee_collection_history"
	feeHistoryCap = 200
)

// FeeCollectorImpl implements ports.FeeCollector. Schedule stages a pending
// record on the in-memory trail and returns; a background completion flips it
// to collected and persists the trail, so the orchestrators never wait on the
// store. Collection is idempotent per (transaction, fee type): re-scheduling
// an already staged fee is a no-op, so retried orchestrations never
// double-charge.
type FeeCollectorImpl struct {
	collectionAddress string
	met               *metrics.Metrics
	log               zerolog.Logger

	mu        sync.Mutex
	trail     *cappedLog[domain.FeeCollectionRecord]
	scheduled map[string]struct{}

	// persistMu orders trail writes without holding mu across the store call.
	persistMu sync.Mutex
	inflight  sync.WaitGroup
	launch    func(fn func())
}

// NewFeeCollector creates a new FeeCollectorImpl routing fees to address.
func NewFeeCollector(kv ports.KeyValueStore, address string, met *metrics.Metrics, log zerolog.Logger) *FeeCollectorImpl {
	return &FeeCollectorImpl{
		collectionAddress: address,
		met:               met,
		log:               log,
		trail:             newCappedLog[domain.FeeCollectionRecord](kv, feeHistoryKey, feeHistoryCap),
		launch:            func(fn func()) { go fn() },
	}
}

// Schedule stages a pending fee-collection record and hands completion to a
// background task. Only the first call touches the store, to hydrate the
// trail; the record itself is persisted when the completion runs.
func (c *FeeCollectorImpl) Schedule(ctx context.Context, transactionID uuid.UUID, amount decimal.Decimal, feeType domain.FeeType) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return apperror.ErrInvalidAmount()
	}

	c.mu.Lock()
	if err := c.ensureLoaded(ctx); err != nil {
		c.mu.Unlock()
		return err
	}

	key := dedupeKey(transactionID, feeType)
	if _, ok := c.scheduled[key]; ok {
		c.mu.Unlock()
		c.log.Debug().
			Str("transaction_id", transactionID.String()).
			Str("fee_type", string(feeType)).
			Msg("fee already scheduled, skipping")
		return nil
	}

	c.trail.push(domain.FeeCollectionRecord{
		TransactionID:     transactionID,
		FeeAmount:         amount,
		FeeType:           feeType,
		CollectionAddress: c.collectionAddress,
		Timestamp:         time.Now(),
		Status:            domain.FeeStatusPending,
	})
	c.scheduled[key] = struct{}{}
	c.mu.Unlock()

	c.inflight.Add(1)
	c.launch(func() { c.complete(transactionID, amount, feeType) })

	c.log.Info().
		Str("transaction_id", transactionID.String()).
		Str("fee_type", string(feeType)).
		Str("amount", amount.String()).
		Msg("fee collection scheduled")
	return nil
}

// Records returns the collection trail, most recent first.
func (c *FeeCollectorImpl) Records(ctx context.Context) ([]domain.FeeCollectionRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return c.trail.items(), nil
}

// TotalCollected sums every collected fee still in the trail. Staged records
// that have not completed yet are excluded.
func (c *FeeCollectorImpl) TotalCollected(ctx context.Context) (decimal.Decimal, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureLoaded(ctx); err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, r := range c.trail.items() {
		if r.Status == domain.FeeStatusCollected {
			total = total.Add(r.FeeAmount)
		}
	}
	return total, nil
}

// Drain blocks until every scheduled completion has run. Called on shutdown
// so staged fees reach the store before the process exits.
func (c *FeeCollectorImpl) Drain() {
	c.inflight.Wait()
}

// complete flips the staged record to collected and persists the trail. Runs
// off the orchestrator path.
func (c *FeeCollectorImpl) complete(transactionID uuid.UUID, amount decimal.Decimal, feeType domain.FeeType) {
	defer c.inflight.Done()
	ctx := context.Background()

	c.mu.Lock()
	flipped := c.trail.apply(func(r *domain.FeeCollectionRecord) bool {
		if r.TransactionID == transactionID && r.FeeType == feeType && r.Status == domain.FeeStatusPending {
			r.Status = domain.FeeStatusCollected
			return true
		}
		return false
	})
	c.mu.Unlock()

	if !flipped {
		c.log.Debug().
			Str("transaction_id", transactionID.String()).
			Str("fee_type", string(feeType)).
			Msg("fee record evicted before completion")
		return
	}

	c.persistMu.Lock()
	c.mu.Lock()
	data, err := c.trail.snapshot()
	c.mu.Unlock()
	if err == nil {
		err = c.trail.store(ctx, data)
	}
	c.persistMu.Unlock()

	if err != nil {
		c.log.Error().Err(err).
			Str("transaction_id", transactionID.String()).
			Str("fee_type", string(feeType)).
			Msg("fee collection persist failed")
		return
	}

	if c.met != nil {
		c.met.FeesCollected.WithLabelValues(string(feeType)).Inc()
	}
	c.log.Info().
		Str("transaction_id", transactionID.String()).
		Str("fee_type", string(feeType)).
		Str("amount", amount.String()).
		Str("address", c.collectionAddress).
		Msg("fee routed to collection address")
}

// ensureLoaded hydrates the trail and rebuilds the dedupe set from it so
// idempotency survives a restart.
func (c *FeeCollectorImpl) ensureLoaded(ctx context.Context) error {
	if c.scheduled != nil {
		return nil
	}
	if err := c.trail.load(ctx); err != nil {
		return err
	}
	records := c.trail.items()
	c.scheduled = make(map[string]struct{}, len(records))
	for _, r := range records {
		c.scheduled[dedupeKey(r.TransactionID, r.FeeType)] = struct{}{}
	}
	return nil
}

func dedupeKey(transactionID uuid.UUID, feeType domain.FeeType) string {
	return fmt.Sprintf("%s|%s", transactionID, feeType)
}
