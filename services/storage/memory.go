package storage

import (
	"context"
	"fmt"
	"sync"
)

// MemoryPhotoStore is an in-process PhotoStore used by tests and as a
// fallback when no Cloudinary credentials are configured.
type MemoryPhotoStore struct {
	mu     sync.RWMutex
	photos map[string][]byte
}

// NewMemoryPhotoStore creates an empty in-memory PhotoStore.
func NewMemoryPhotoStore() *MemoryPhotoStore {
	return &MemoryPhotoStore{photos: make(map[string][]byte)}
}

func (s *MemoryPhotoStore) Save(ctx context.Context, owner string, jpeg []byte) error {
	copied := make([]byte, len(jpeg))
	copy(copied, jpeg)
	s.mu.Lock()
	s.photos[owner] = copied
	s.mu.Unlock()
	return nil
}

func (s *MemoryPhotoStore) Load(ctx context.Context, owner string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	photo, ok := s.photos[owner]
	if !ok {
		return nil, fmt.Errorf("photo store: no retained photo for owner")
	}
	copied := make([]byte, len(photo))
	copy(copied, photo)
	return copied, nil
}

func (s *MemoryPhotoStore) Delete(ctx context.Context, owner string) error {
	s.mu.Lock()
	delete(s.photos, owner)
	s.mu.Unlock()
	return nil
}
