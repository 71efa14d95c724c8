package storage

import "context"

// MemoryStore is an in-memory Store used in tests and as a fallback when no
// durable medium is configured.
type MemoryStore struct {
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	v, ok := m.values[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	v := make([]byte, len(value))
	copy(v, value)
	m.values[key] = v
	return nil
}

func (m *MemoryStore) Remove(ctx context.Context, key string) error {
	delete(m.values, key)
	return nil
}

func (m *MemoryStore) Clear(ctx context.Context) error {
	m.values = make(map[string][]byte)
	return nil
}

func (m *MemoryStore) Close() error { return nil }
