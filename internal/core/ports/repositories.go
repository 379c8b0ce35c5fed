package ports

import (
	"context"

	"voltx-wallet-engine/internal/core/domain"
)

// KeyValueStore is the durable store behind the ledger, the histories and
// the persisted settings. Get returns (nil, nil) when the key is absent.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// WalletRepository persists the wallet identity (addresses, creation time).
type WalletRepository interface {
	Get(ctx context.Context) (*domain.Wallet, error) // nil, nil when not initialized
	Save(ctx context.Context, wallet *domain.Wallet) error
}

// ArchiveRepository is the long-term Postgres archive for settled activity.
// The hot path never reads from it; archiving is best effort.
type ArchiveRepository interface {
	ArchiveTransfer(ctx context.Context, transfer *domain.Transfer) error
	ArchiveConversion(ctx context.Context, order *domain.ConversionOrder) error
	CountArchived(ctx context.Context) (transfers int64, conversions int64, err error)
}
