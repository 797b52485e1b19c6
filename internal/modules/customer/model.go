package customer

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a buyer able to place orders. Orders reference customers by
// id only; nothing in the order flow mutates this record.
type Customer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
