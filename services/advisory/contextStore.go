package advisory

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"akanuke/models"

	"github.com/go-redis/redis/v8"
)

const advisoryContextPrefix = "advisory:ctx:"

// ContextStore persists the per-owner conversation between requests.
type ContextStore interface {
	Get(ctx context.Context, owner string) ([]models.ChatMessage, error)
	Set(ctx context.Context, owner string, messages []models.ChatMessage) error
	Clear(ctx context.Context, owner string) error
}

// RedisContextStore keeps conversations in Redis with a TTL, so idle
// sessions age out on their own.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisContextStore creates a ContextStore over the given client.
func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, owner string) ([]models.ChatMessage, error) {
	data, err := s.client.Get(ctx, advisoryContextPrefix+owner).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var messages []models.ChatMessage
	if err := json.Unmarshal([]byte(data), &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *RedisContextStore) Set(ctx context.Context, owner string, messages []models.ChatMessage) error {
	b, err := json.Marshal(messages)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, advisoryContextPrefix+owner, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, owner string) error {
	return s.client.Del(ctx, advisoryContextPrefix+owner).Err()
}

// MemoryContextStore is an in-process ContextStore used by tests.
type MemoryContextStore struct {
	mu       sync.RWMutex
	contexts map[string][]models.ChatMessage
}

// NewMemoryContextStore creates an empty in-memory ContextStore.
func NewMemoryContextStore() *MemoryContextStore {
	return &MemoryContextStore{contexts: make(map[string][]models.ChatMessage)}
}

func (s *MemoryContextStore) Get(ctx context.Context, owner string) ([]models.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	messages := s.contexts[owner]
	copied := make([]models.ChatMessage, len(messages))
	copy(copied, messages)
	return copied, nil
}

func (s *MemoryContextStore) Set(ctx context.Context, owner string, messages []models.ChatMessage) error {
	copied := make([]models.ChatMessage, len(messages))
	copy(copied, messages)
	s.mu.Lock()
	s.contexts[owner] = copied
	s.mu.Unlock()
	return nil
}

func (s *MemoryContextStore) Clear(ctx context.Context, owner string) error {
	s.mu.Lock()
	delete(s.contexts, owner)
	s.mu.Unlock()
	return nil
}
