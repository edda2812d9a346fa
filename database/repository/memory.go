package repository

import (
	"context"
	"sync"

	"zyppr/models"
)

// MemoryUserRepo keeps the user collection in memory. Tests construct
// isolated instances instead of sharing ambient state.
type MemoryUserRepo struct {
	mu    sync.RWMutex
	users []models.User
}

func NewMemoryUserRepo(seed ...models.User) *MemoryUserRepo {
	return &MemoryUserRepo{users: append([]models.User(nil), seed...)}
}

func (r *MemoryUserRepo) All(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.User(nil), r.users...), nil
}

func (r *MemoryUserRepo) ReplaceAll(ctx context.Context, users []models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append([]models.User(nil), users...)
	return nil
}

func (r *MemoryUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			copied := u
			return &copied, nil
		}
	}
	return nil, ErrNotFound
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
	return nil, ErrNotFound
}

// MemoryBusinessRepo keeps the business collection in memory. Matching the
// durable repo, demo tenants are dropped on write.
type MemoryBusinessRepo struct {
	mu         sync.RWMutex
	businesses []models.Business
}

func NewMemoryBusinessRepo(seed ...models.Business) *MemoryBusinessRepo {
	return &MemoryBusinessRepo{businesses: append([]models.Business(nil), seed...)}
}

func (r *MemoryBusinessRepo) All(ctx context.Context) ([]models.Business, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Business(nil), r.businesses...), nil
}

func (r *MemoryBusinessRepo) ReplaceAll(ctx context.Context, businesses []models.Business) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	real := make([]models.Business, 0, len(businesses))
	for _, b := range businesses {
		if b.IsDemo {
			continue
		}
		real = append(real, b)
	}
	r.businesses = real
	return nil
}

func (r *MemoryBusinessRepo) GetByID(ctx context.Context, id string) (*models.Business, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.businesses {
		if b.ID == id {
			copied := b
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}
