package service

import (
	"context"
	"encoding/json"
	"fmt"

	"voltx-wallet-engine/internal/core/ports"
	"voltx-wallet-engine/pkg/apperror"
)

// cappedLog is a bounded most-recent-first log: a fixed-size ring buffer in
// memory with a JSON snapshot persisted under a stable key. Prepending is
// O(1); once the ring is full the oldest entry is overwritten in place.
//
// cappedLog does no locking of its own; owners serialize access.
type cappedLog[T any] struct {
	kv  ports.KeyValueStore
	key string
	max int

	loaded bool
	buf    []T
	head   int // ring index of the most recent entry
	size   int
}

func newCappedLog[T any](kv ports.KeyValueStore, key string, max int) *cappedLog[T] {
	return &cappedLog[T]{kv: kv, key: key, max: max, buf: make([]T, max)}
}

// load hydrates the ring from the persisted snapshot. It is a no-op after the
// first successful call.
func (l *cappedLog[T]) load(ctx context.Context) error {
	if l.loaded {
		return nil
	}
	data, err := l.kv.Get(ctx, l.key)
	if err != nil {
		return apperror.ErrPersistence(fmt.Errorf("load %s: %w", l.key, err))
	}
	if data != nil {
		var list []T
		if err := json.Unmarshal(data, &list); err != nil {
			return apperror.ErrPersistence(fmt.Errorf("decode %s: %w", l.key, err))
		}
		if len(list) > l.max {
			list = list[:l.max]
		}
		// The snapshot is most recent first; replay oldest first so list[0]
		// ends up at the head.
		for i := len(list) - 1; i >= 0; i-- {
			l.push(list[i])
		}
	}
	l.loaded = true
	return nil
}

// push prepends an entry, evicting the oldest when the ring is full.
func (l *cappedLog[T]) push(item T) {
	l.head = (l.head - 1 + l.max) % l.max
	l.buf[l.head] = item
	if l.size < l.max {
		l.size++
	}
}

// items returns a copy of the entries, most recent first.
func (l *cappedLog[T]) items() []T {
	out := make([]T, l.size)
	for i := 0; i < l.size; i++ {
		out[i] = l.buf[(l.head+i)%l.max]
	}
	return out
}

// apply runs fn over the entries, most recent first, stopping at the first
// entry fn reports as changed. It returns whether any entry changed.
func (l *cappedLog[T]) apply(fn func(*T) bool) bool {
	for i := 0; i < l.size; i++ {
		if fn(&l.buf[(l.head+i)%l.max]) {
			return true
		}
	}
	return false
}

// snapshot serializes the current entries for persistence.
func (l *cappedLog[T]) snapshot() ([]byte, error) {
	data, err := json.Marshal(l.items())
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("encode %s: %w", l.key, err))
	}
	return data, nil
}

// store writes a serialized snapshot under the log's key.
func (l *cappedLog[T]) store(ctx context.Context, data []byte) error {
	if err := l.kv.Set(ctx, l.key, data); err != nil {
		return apperror.ErrPersistence(fmt.Errorf("save %s: %w", l.key, err))
	}
	return nil
}

// sync persists the current entries.
func (l *cappedLog[T]) sync(ctx context.Context) error {
	data, err := l.snapshot()
	if err != nil {
		return err
	}
	return l.store(ctx, data)
}
