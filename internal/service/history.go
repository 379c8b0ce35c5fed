package service

import (
	"context"
	"sync"

	"voltx-wallet-engine/internal/core/domain"
	"voltx-wallet-engine/internal/core/ports"

	"github.com/rs/zerolog"
)

// Storage keys and caps for the activity histories. Each history is a ring
// buffer persisted most recent first under its own stable key.
const (
	transferHistoryKey   = "bitcoin_transfer_history"
	conversionHistoryKey = "conversion_history"

	transferHistoryCap   = 100
	conversionHistoryCap = 100
)

// HistoryStoreImpl implements ports.HistoryStore over the key-value store.
type HistoryStoreImpl struct {
	log zerolog.Logger

	mu          sync.Mutex
	transfers   *cappedLog[domain.Transfer]
	conversions *cappedLog[domain.ConversionOrder]
}

// NewHistoryStore creates a new HistoryStoreImpl.
func NewHistoryStore(kv ports.KeyValueStore, log zerolog.Logger) *HistoryStoreImpl {
	return &HistoryStoreImpl{
		log:         log,
		transfers:   newCappedLog[domain.Transfer](kv, transferHistoryKey, transferHistoryCap),
		conversions: newCappedLog[domain.ConversionOrder](kv, conversionHistoryKey, conversionHistoryCap),
	}
}

// RecordTransfer prepends a terminal transfer to the transfer history.
func (s *HistoryStoreImpl) RecordTransfer(ctx context.Context, transfer *domain.Transfer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.transfers.load(ctx); err != nil {
		return err
	}
	s.transfers.push(*transfer)
	return s.transfers.sync(ctx)
}

// RecordConversion prepends a terminal conversion to the conversion history.
func (s *HistoryStoreImpl) RecordConversion(ctx context.Context, order *domain.ConversionOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.conversions.load(ctx); err != nil {
		return err
	}
	s.conversions.push(*order)
	return s.conversions.sync(ctx)
}

// Transfers returns up to limit transfers, most recent first. A non-positive
// limit returns the whole history.
func (s *HistoryStoreImpl) Transfers(ctx context.Context, limit int) ([]domain.Transfer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.transfers.load(ctx); err != nil {
		return nil, err
	}
	return capList(s.transfers.items(), limit), nil
}

// Conversions returns up to limit conversion orders, most recent first.
func (s *HistoryStoreImpl) Conversions(ctx context.Context, limit int) ([]domain.ConversionOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.conversions.load(ctx); err != nil {
		return nil, err
	}
	return capList(s.conversions.items(), limit), nil
}

func capList[T any](list []T, limit int) []T {
	if limit > 0 && limit < len(list) {
		return list[:limit]
	}
	return list
}
