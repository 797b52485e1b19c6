package customer

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no customer matches the lookup.
var ErrNotFound = errors.New("customer not found")

// Repository defines customer data storage.
type Repository interface {
	Create(ctx context.Context, c *Customer) error
	FindByID(ctx context.Context, id string) (*Customer, error)
	FindByEmail(ctx context.Context, email string) (*Customer, error)
}
