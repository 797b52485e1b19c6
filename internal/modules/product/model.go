package product

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog entry carrying a unit price and live stock.
// Quantity is never negative; the only mutation the order flow performs is
// a floor-checked decrement.
type Product struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// QuantityUpdate sets a product's stock to an absolute value.
type QuantityUpdate struct {
	ProductID uuid.UUID
	Quantity  int
}

// StockDecrement asks for quantity units of a product to be taken from
// stock.
type StockDecrement struct {
	ProductID uuid.UUID
	Quantity  int
}
