package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Order aggregates a customer reference and its priced line items. It is
// written whole in a single transaction and never mutated afterwards.
type Order struct {
	ID         uuid.UUID    `json:"id"`
	CustomerID uuid.UUID    `json:"customer_id"`
	Items      []*OrderItem `json:"items"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// OrderItem is a single line item with its price fixed at order time,
// decoupled from later catalog price changes.
type OrderItem struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
}

// ProductRequest is one requested product/quantity pairing.
type ProductRequest struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// CreateOrderRequest is the payload for placing a new order.
type CreateOrderRequest struct {
	CustomerID string           `json:"customer_id"`
	Products   []ProductRequest `json:"products"`
}

// Validate rejects a malformed request before any I/O happens.
func (r CreateOrderRequest) Validate() error {
	if r.CustomerID == "" {
		return fmt.Errorf("customer_id is required")
	}
	if len(r.Products) == 0 {
		return fmt.Errorf("order must contain at least one product")
	}
	for _, p := range r.Products {
		if p.ID == "" {
			return fmt.Errorf("product id is required")
		}
		if p.Quantity <= 0 {
			return fmt.Errorf("quantity must be > 0 for product %s", p.ID)
		}
	}
	return nil
}
