package order

import "context"

// Repository defines data access for orders.
type Repository interface {
	// Create persists the order with its items and applies the matching
	// stock decrements as one atomic unit. A decrement that would drive a
	// product's quantity negative aborts the whole write with
	// *product.InsufficientStockError; nothing is left half-applied.
	Create(ctx context.Context, o *Order) error

	// GetByID retrieves an order with its items by UUID.
	GetByID(ctx context.Context, id string) (*Order, error)

	// ListByCustomer returns all orders placed by a specific customer.
	ListByCustomer(ctx context.Context, customerID string) ([]*Order, error)
}
