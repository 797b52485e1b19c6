package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no product matches the lookup.
var ErrNotFound = errors.New("product not found")

// InsufficientStockError is returned by DecrementStock when taking the
// requested quantity would leave a product's stock negative.
type InsufficientStockError struct {
	ProductID uuid.UUID
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s", e.ProductID)
}

// Repository defines catalog data storage.
type Repository interface {
	Create(ctx context.Context, p *Product) error

	FindByName(ctx context.Context, name string) (*Product, error)

	// FindAllByID returns the products whose ids matched. Ids with no
	// catalog record are simply absent from the result, not reported.
	FindAllByID(ctx context.Context, ids []uuid.UUID) ([]*Product, error)

	List(ctx context.Context) ([]*Product, error)

	Update(ctx context.Context, p *Product) error

	// UpdateQuantity applies every update or none of them. Updates with a
	// negative quantity or an unknown product id fail the whole batch.
	UpdateQuantity(ctx context.Context, updates []QuantityUpdate) error

	// DecrementStock subtracts each requested quantity as one atomic unit.
	// If any product would go negative, nothing is applied and an
	// *InsufficientStockError names the first offending decrement.
	DecrementStock(ctx context.Context, decrements []StockDecrement) error
}
