// Package storage holds storage adapters that are backend-agnostic: they
// build on ports.KeyValueStore and work over Redis or memory alike.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"voltx-wallet-engine/internal/core/domain"
	"voltx-wallet-engine/internal/core/ports"
)

const walletKey = "voltx_wallet_data"

// WalletRepo implements ports.WalletRepository over a key-value store.
type WalletRepo struct {
	kv ports.KeyValueStore
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(kv ports.KeyValueStore) *WalletRepo {
	return &WalletRepo{kv: kv}
}

// Get fetches the wallet identity. Returns nil, nil when not initialized.
func (r *WalletRepo) Get(ctx context.Context) (*domain.Wallet, error) {
	data, err := r.kv.Get(ctx, walletKey)
	if err != nil {
		return nil, fmt.Errorf("load wallet: %w", err)
	}
	if data == nil {
		return nil, nil
	}
	var wallet domain.Wallet
	if err := json.Unmarshal(data, &wallet); err != nil {
		return nil, fmt.Errorf("decode wallet: %w", err)
	}
	return &wallet, nil
}

// Save persists the wallet identity.
func (r *WalletRepo) Save(ctx context.Context, wallet *domain.Wallet) error {
	data, err := json.Marshal(wallet)
	if err != nil {
		return fmt.Errorf("encode wallet: %w", err)
	}
	if err := r.kv.Set(ctx, walletKey, data); err != nil {
		return fmt.Errorf("save wallet: %w", err)
	}
	return nil
}
