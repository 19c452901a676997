package userRepo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"akanuke/models"
)

// MemoryUserRepo is an in-process UserRepository used by tests.
type MemoryUserRepo struct {
	mu    sync.RWMutex
	users map[string]models.User // keyed by ID
}

// NewMemoryUserRepo creates an empty in-memory UserRepository.
func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: make(map[string]models.User)}
}

func (r *MemoryUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return fmt.Errorf("duplicate email")
		}
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.users[id]; ok {
		copied := u
		return &copied, nil
	}
	return nil, nil
}

func (r *MemoryUserRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return fmt.Errorf("user not found")
	}
	delete(r.users, id)
	return nil
}

// Count returns the number of stored users. Test helper.
func (r *MemoryUserRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
