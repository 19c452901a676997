package collection

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"akanuke/utils"

	"go.uber.org/zap"
)

// MemoryStore is an in-process Store used by tests and as a fallback when
// no database is configured. Payloads are kept JSON-encoded so load/save
// round-trips behave exactly like the MongoDB store.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore creates an empty in-memory Store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func memKey(owner, key string) string {
	return owner + ":" + key
}

// Load fills dest with the stored value, leaving it untouched when the key
// is absent or the payload does not parse.
func (s *MemoryStore) Load(ctx context.Context, owner, key string, dest any) error {
	s.mu.RLock()
	raw, ok := s.data[memKey(owner, key)]
	s.mu.RUnlock()
	if !ok {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		utils.GetLogger().Warn("collection store: corrupt payload, falling back to default",
			zap.String("owner", owner), zap.String("key", key), zap.Error(err))
		return nil
	}
	return nil
}

// Save serializes value and stores it under (owner, key).
func (s *MemoryStore) Save(ctx context.Context, owner, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("collection store: marshal %q: %w", key, err)
	}
	s.mu.Lock()
	s.data[memKey(owner, key)] = string(data)
	s.mu.Unlock()
	return nil
}

// Remove deletes the stored value for (owner, key).
func (s *MemoryStore) Remove(ctx context.Context, owner, key string) error {
	s.mu.Lock()
	delete(s.data, memKey(owner, key))
	s.mu.Unlock()
	return nil
}

// RemoveOwner drops every collection belonging to the owner.
func (s *MemoryStore) RemoveOwner(ctx context.Context, owner string) error {
	prefix := owner + ":"
	s.mu.Lock()
	for k := range s.data {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(s.data, k)
		}
	}
	s.mu.Unlock()
	return nil
}

// SeedRaw stores a raw payload verbatim, bypassing serialization. Tests use
// it to simulate corrupt persisted JSON.
func (s *MemoryStore) SeedRaw(owner, key, raw string) {
	s.mu.Lock()
	s.data[memKey(owner, key)] = raw
	s.mu.Unlock()
}
