package product

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]*Product
}

// NewMemoryRepository creates an in-memory catalog repository. All
// operations, including batched decrements, are serialized by one mutex so
// the backend gives the same atomicity as the transactional store.
func NewMemoryRepository() Repository {
	return &memoryRepo{products: make(map[uuid.UUID]*Product)}
}

func (r *memoryRepo) Create(ctx context.Context, p *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	now := time.Now().UTC()
	cp.CreatedAt = now
	cp.UpdatedAt = now
	r.products[cp.ID] = &cp
	return nil
}

func (r *memoryRepo) FindByName(ctx context.Context, name string) (*Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryRepo) FindAllByID(ctx context.Context, ids []uuid.UUID) ([]*Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var products []*Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			cp := *p
			products = append(products, &cp)
		}
	}
	return products, nil
}

func (r *memoryRepo) List(ctx context.Context) ([]*Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	products := make([]*Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		products = append(products, &cp)
	}
	return products, nil
}

func (r *memoryRepo) Update(ctx context.Context, p *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.products[p.ID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, p.ID)
	}
	existing.Name = p.Name
	existing.Price = p.Price
	existing.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *memoryRepo) UpdateQuantity(ctx context.Context, updates []QuantityUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range updates {
		if u.Quantity < 0 {
			return fmt.Errorf("quantity must be >= 0 for product %s", u.ProductID)
		}
		if _, ok := r.products[u.ProductID]; !ok {
			return fmt.Errorf("%w: %s", ErrNotFound, u.ProductID)
		}
	}
	now := time.Now().UTC()
	for _, u := range updates {
		r.products[u.ProductID].Quantity = u.Quantity
		r.products[u.ProductID].UpdatedAt = now
	}
	return nil
}

func (r *memoryRepo) DecrementStock(ctx context.Context, decrements []StockDecrement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Walk the list against a running remainder so duplicate ids within
	// one batch cannot combine into an oversell, then apply only once the
	// whole batch is known to fit.
	remaining := make(map[uuid.UUID]int, len(decrements))
	for _, d := range decrements {
		if _, seen := remaining[d.ProductID]; !seen {
			p, ok := r.products[d.ProductID]
			if !ok {
				return fmt.Errorf("%w: %s", ErrNotFound, d.ProductID)
			}
			remaining[d.ProductID] = p.Quantity
		}
		if remaining[d.ProductID] < d.Quantity {
			return &InsufficientStockError{ProductID: d.ProductID}
		}
		remaining[d.ProductID] -= d.Quantity
	}

	now := time.Now().UTC()
	for id, qty := range remaining {
		r.products[id].Quantity = qty
		r.products[id].UpdatedAt = now
	}
	return nil
}
