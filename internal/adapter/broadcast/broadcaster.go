// Package broadcast simulates the external Bitcoin network and the
// settlement provider. The simulators model latency and honor context
// cancellation so the orchestrators' timeout paths behave as in production.
package broadcast

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"voltx-wallet-engine/internal/core/domain"

	"github.com/rs/zerolog"
)

// Broadcaster implements ports.NetworkBroadcaster by simulating a network
// round trip and minting a transaction hash.
type Broadcaster struct {
	onChainLatency   time.Duration
	lightningLatency time.Duration
	log              zerolog.Logger
}

// NewBroadcaster creates a new simulated broadcaster.
func NewBroadcaster(onChainLatency, lightningLatency time.Duration, log zerolog.Logger) *Broadcaster {
	return &Broadcaster{
		onChainLatency:   onChainLatency,
		lightningLatency: lightningLatency,
		log:              log,
	}
}

// Broadcast submits the transfer and returns its network hash.
func (b *Broadcaster) Broadcast(ctx context.Context, transfer *domain.Transfer) (string, error) {
	latency := b.onChainLatency
	if transfer.Kind == domain.TransferKindLightning {
		latency = b.lightningLatency
	}

	select {
	case <-time.After(latency):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	hash, err := randomHash()
	if err != nil {
		return "", fmt.Errorf("generating tx hash: %w", err)
	}
	if transfer.Kind == domain.TransferKindLightning {
		hash = "ln_" + hash
	}

	b.log.Debug().
		Str("transfer_id", transfer.ID.String()).
		Str("tx_hash", hash).
		Msg("transfer broadcast")
	return hash, nil
}

// Settlement implements ports.SettlementProvider by simulating the
// decentralized BTC -> USDT -> local settlement path.
type Settlement struct {
	latency time.Duration
	log     zerolog.Logger
}

// NewSettlement creates a new simulated settlement provider.
func NewSettlement(latency time.Duration, log zerolog.Logger) *Settlement {
	return &Settlement{latency: latency, log: log}
}

// Settle executes the order and returns the provider's settlement reference.
func (s *Settlement) Settle(ctx context.Context, order *domain.ConversionOrder) (string, error) {
	select {
	case <-time.After(s.latency):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	settlementID := fmt.Sprintf("yaki_%d", time.Now().UnixMilli())
	s.log.Debug().
		Str("order_id", order.ID.String()).
		Str("settlement_id", settlementID).
		Msg("conversion settled")
	return settlementID, nil
}

func randomHash() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
