package order

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/storefronthq/storefront-backend/internal/modules/product"
)

// memoryRepo keeps orders in process memory, pairing every order write
// with a stock decrement against the shared catalog repository.
type memoryRepo struct {
	mu       sync.RWMutex
	orders   map[string]*Order
	products product.Repository
}

// NewMemoryRepository creates an in-memory order repository backed by the
// given catalog repository for stock decrements.
func NewMemoryRepository(products product.Repository) Repository {
	return &memoryRepo{
		orders:   make(map[string]*Order),
		products: products,
	}
}

func (r *memoryRepo) Create(ctx context.Context, o *Order) error {
	decrements := make([]product.StockDecrement, 0, len(o.Items))
	for _, item := range o.Items {
		decrements = append(decrements, product.StockDecrement{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	// DecrementStock is all-or-nothing, so the order only becomes visible
	// once every line's stock has been taken.
	if err := r.products.DecrementStock(ctx, decrements); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	cp := cloneOrder(o)
	now := time.Now().UTC()
	cp.CreatedAt = now
	cp.UpdatedAt = now
	r.orders[o.ID.String()] = cp
	return nil
}

func (r *memoryRepo) GetByID(ctx context.Context, id string) (*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %s not found", id)
	}
	return cloneOrder(o), nil
}

func (r *memoryRepo) ListByCustomer(ctx context.Context, customerID string) ([]*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var orders []*Order
	for _, o := range r.orders {
		if o.CustomerID.String() == customerID {
			orders = append(orders, cloneOrder(o))
		}
	}
	return orders, nil
}

func cloneOrder(o *Order) *Order {
	cp := *o
	cp.Items = make([]*OrderItem, len(o.Items))
	for i, item := range o.Items {
		itemCp := *item
		cp.Items[i] = &itemCp
	}
	return &cp
}
