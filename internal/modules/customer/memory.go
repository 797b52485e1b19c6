package customer

import (
	"context"
	"strings"
	"sync"
	"time"
)

type memoryRepository struct {
	mu        sync.RWMutex
	customers map[string]*Customer
}

// NewMemoryRepository creates an in-memory customer repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{customers: make(map[string]*Customer)}
}

func (r *memoryRepository) Create(ctx context.Context, c *Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	now := time.Now().UTC()
	cp.CreatedAt = now
	cp.UpdatedAt = now
	r.customers[cp.ID.String()] = &cp
	return nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id string) (*Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.customers[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memoryRepository) FindByEmail(ctx context.Context, email string) (*Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.customers {
		if strings.EqualFold(c.Email, email) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}
