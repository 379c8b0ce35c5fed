package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"voltx-wallet-engine/internal/core/domain"
	"voltx-wallet-engine/internal/core/ports"
	"voltx-wallet-engine/pkg/apperror"
	"voltx-wallet-engine/pkg/metrics"

	"github.com/rs/zerolog"
)

// Per-country snapshot key: exchange_rate:zm, exchange_rate:mw, ...
const rateCacheKeyPrefix = "exchange_rate:"

// RateCacheImpl implements ports.RateCache. Snapshots older than the TTL are
// never served: an expired entry forces a provider fetch, and a fetch failure
// surfaces as an error rather than a stale rate. Every fetched snapshot is
// also persisted under a per-country key, so freshness survives a restart.
type RateCacheImpl struct {
	provider ports.RateProvider
	kv       ports.KeyValueStore
	met      *metrics.Metrics
	log      zerolog.Logger
	now      func() time.Time

	mu        sync.Mutex
	snapshots map[string]domain.RateSnapshot
}

// NewRateCache creates a new RateCacheImpl.
func NewRateCache(provider ports.RateProvider, kv ports.KeyValueStore, met *metrics.Metrics, log zerolog.Logger) *RateCacheImpl {
	return &RateCacheImpl{
		provider:  provider,
		kv:        kv,
		met:       met,
		log:       log,
		now:       time.Now,
		snapshots: make(map[string]domain.RateSnapshot),
	}
}

// Snapshot returns a fresh rate snapshot for the corridor, fetching from the
// provider when neither the in-memory nor the persisted one is inside the TTL.
func (c *RateCacheImpl) Snapshot(ctx context.Context, countryID string) (domain.RateSnapshot, error) {
	country := domain.CountryByID(countryID)
	if country == nil {
		return domain.RateSnapshot{}, apperror.ErrUnknownCountry(countryID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if snap, ok := c.snapshots[countryID]; ok && snap.Fresh(now) {
		return snap, nil
	}
	if snap, ok := c.loadPersisted(ctx, countryID); ok && snap.Fresh(now) {
		c.snapshots[countryID] = snap
		return snap, nil
	}

	btcToUSD, usdToLocal, err := c.provider.FetchRates(ctx, *country)
	if err != nil {
		c.log.Error().Err(err).Str("country", countryID).Msg("rate fetch failed")
		return domain.RateSnapshot{}, apperror.ErrRateUnavailable(err)
	}

	snap := domain.NewRateSnapshot(countryID, btcToUSD, usdToLocal, now)
	c.snapshots[countryID] = snap
	c.persist(ctx, snap)
	if c.met != nil {
		c.met.RateRefreshes.Inc()
	}

	c.log.Debug().
		Str("country", countryID).
		Str("btc_to_local", snap.BTCToLocal.String()).
		Msg("rate snapshot refreshed")
	return snap, nil
}

// Invalidate drops the cached snapshot for a corridor, in memory and in the
// store.
func (c *RateCacheImpl) Invalidate(countryID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.snapshots, countryID)
	if err := c.kv.Delete(context.Background(), rateCacheKeyPrefix+countryID); err != nil {
		c.log.Warn().Err(err).Str("country", countryID).Msg("rate snapshot delete failed")
	}
}

// loadPersisted reads the per-country snapshot from the store. Read and
// decode failures degrade to a provider fetch.
func (c *RateCacheImpl) loadPersisted(ctx context.Context, countryID string) (domain.RateSnapshot, bool) {
	data, err := c.kv.Get(ctx, rateCacheKeyPrefix+countryID)
	if err != nil {
		c.log.Warn().Err(err).Str("country", countryID).Msg("rate snapshot load failed")
		return domain.RateSnapshot{}, false
	}
	if data == nil {
		return domain.RateSnapshot{}, false
	}
	var snap domain.RateSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		c.log.Warn().Err(err).Str("country", countryID).Msg("rate snapshot decode failed")
		return domain.RateSnapshot{}, false
	}
	return snap, true
}

// persist writes the snapshot under its per-country key, best effort.
func (c *RateCacheImpl) persist(ctx context.Context, snap domain.RateSnapshot) {
	data, err := json.Marshal(snap)
	if err == nil {
		err = c.kv.Set(ctx, rateCacheKeyPrefix+snap.CountryID, data)
	}
	if err != nil {
		c.log.Warn().Err(err).Str("country", snap.CountryID).Msg("rate snapshot persist failed")
	}
}
