package order

import (
	"errors"
	"fmt"
)

// Failures surfaced by CreateOrder. All are terminal for the request and
// never retried internally; stock may have moved, so a caller who wants to
// retry must go back through validation.
var (
	// ErrCustomerNotFound means the requested customer id has no record.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrProductsNotFound means none of the requested product ids matched
	// any catalog record.
	ErrProductsNotFound = errors.New("products not found")
)

// ProductNotFoundError names the first requested product id, in request
// order, that is absent from the catalog.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("could not find product %s", e.ProductID)
}

// InsufficientStockError names the first line item, in request order, whose
// requested quantity exceeds available stock. It is also returned when a
// concurrent order drains the stock between validation and commit.
type InsufficientStockError struct {
	ProductID string
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("quantity %d not available for %s", e.Requested, e.ProductID)
}

// CommitError wraps a storage failure during the transactional write of
// the order and its stock decrement. The transaction rolls back whole, so
// no partial state is left behind it.
type CommitError struct {
	Err error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("order commit failed: %v", e.Err)
}

func (e *CommitError) Unwrap() error { return e.Err }
