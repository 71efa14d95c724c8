// Package storage abstracts the durable key-value store holding the
// persisted session snapshot, so the core stays storage-medium-agnostic.
// Keys are independent entries; the medium gives no atomicity guarantee
// across them.
package storage

import "context"

// Store is a small persistence interface over string key to raw value.
// Get returns a nil value (and nil error) for an absent key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Close() error
}
