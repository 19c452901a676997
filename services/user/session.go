package user

import (
	"context"
	"sync"
	"time"

	"akanuke/utils"

	"github.com/go-redis/redis/v8"
)

// sessionTTL is how long a session marker lives without activity.
const sessionTTL = 24 * time.Hour

// SessionStore tracks the process-wide "is logged in" markers, one per
// session owner.
type SessionStore interface {
	Mark(ctx context.Context, userID, tokenHash string) error
	Active(ctx context.Context, userID string) bool
	// TokenHash returns the hash recorded at login, or "" when no
	// session exists.
	TokenHash(ctx context.Context, userID string) (string, error)
	Clear(ctx context.Context, userID string) error
}

// RedisSessionStore keeps session markers in the auth Redis DB.
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore creates a SessionStore over the given Redis client.
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) Mark(ctx context.Context, userID, tokenHash string) error {
	return s.client.Set(ctx, utils.SessionPrefix+userID, tokenHash, sessionTTL).Err()
}

func (s *RedisSessionStore) Active(ctx context.Context, userID string) bool {
	_, err := s.client.Get(ctx, utils.SessionPrefix+userID).Result()
	return err == nil
}

func (s *RedisSessionStore) TokenHash(ctx context.Context, userID string) (string, error) {
	hash, err := s.client.Get(ctx, utils.SessionPrefix+userID).Result()
	if err == redis.Nil {
		return "", nil
	}
	return hash, err
}

func (s *RedisSessionStore) Clear(ctx context.Context, userID string) error {
	return s.client.Del(ctx, utils.SessionPrefix+userID).Err()
}

// MemorySessionStore is an in-process SessionStore used by tests.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]string
}

// NewMemorySessionStore creates an empty in-memory SessionStore.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]string)}
}

func (s *MemorySessionStore) Mark(ctx context.Context, userID, tokenHash string) error {
	s.mu.Lock()
	s.sessions[userID] = tokenHash
	s.mu.Unlock()
	return nil
}

func (s *MemorySessionStore) Active(ctx context.Context, userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sessions[userID]
	return ok
}

func (s *MemorySessionStore) TokenHash(ctx context.Context, userID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[userID], nil
}

func (s *MemorySessionStore) Clear(ctx context.Context, userID string) error {
	s.mu.Lock()
	delete(s.sessions, userID)
	s.mu.Unlock()
	return nil
}
