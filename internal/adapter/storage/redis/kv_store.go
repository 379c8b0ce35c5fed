package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// KVStore implements ports.KeyValueStore using Redis. Entries have no TTL:
// the ledger and histories are durable state, not caches.
type KVStore struct {
	client *goredis.Client
	prefix string
}

// NewKVStore creates a new Redis-backed key-value store.
func NewKVStore(client *goredis.Client) *KVStore {
	return &KVStore{
		client: client,
		prefix: "voltx:",
	}
}

// Get retrieves a value by key. Returns nil, nil if the key does not exist.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, nil
}

// Set stores a value under key.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete removes a key. Deleting a missing key is not an error.
func (s *KVStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
