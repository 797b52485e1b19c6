package order

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/storefronthq/storefront-backend/internal/modules/customer"
	"github.com/storefronthq/storefront-backend/internal/modules/product"
)

// Service defines the order business logic.
type Service interface {
	// CreateOrder validates the request against the live catalog, prices
	// every line item at the catalog price read during validation, and
	// commits the order together with the matching stock decrement as one
	// atomic unit.
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error)

	// GetOrder retrieves a full order with its items by UUID.
	GetOrder(ctx context.Context, id string) (*Order, error)

	// ListCustomerOrders returns all orders placed by a customer.
	ListCustomerOrders(ctx context.Context, customerID string) ([]*Order, error)
}

type service struct {
	orders    Repository
	products  product.Repository
	customers customer.Repository
}

// NewService creates a new order service.
func NewService(orders Repository, products product.Repository, customers customer.Repository) Service {
	return &service{orders: orders, products: products, customers: customers}
}

// validatedLine is a requested line item paired with the catalog state
// read during validation. Price and catalog quantity are snapshots: they
// are reused through pricing and commit rather than re-read.
type validatedLine struct {
	ProductID uuid.UUID
	Quantity  int
	Price     float64
}

func (s *service) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cust, lines, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	o := &Order{
		ID:         uuid.New(),
		CustomerID: cust.ID,
		Items:      price(lines),
	}
	for _, item := range o.Items {
		item.OrderID = o.ID
	}

	if err := s.orders.Create(ctx, o); err != nil {
		// A lost race on the conditional decrement is reported the same
		// way the validation check reports it; anything else is a failed
		// commit.
		var stockErr *product.InsufficientStockError
		if errors.As(err, &stockErr) {
			return nil, &InsufficientStockError{
				ProductID: stockErr.ProductID.String(),
				Requested: requestedQuantity(req.Products, stockErr.ProductID),
			}
		}
		return nil, &CommitError{Err: err}
	}
	return o, nil
}

// validate confirms the customer exists and that every requested product
// exists with sufficient stock. Checks run in request order and the first
// failure wins; nothing is mutated.
func (s *service) validate(ctx context.Context, req CreateOrderRequest) (*customer.Customer, []validatedLine, error) {
	cust, err := s.customers.FindByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			return nil, nil, ErrCustomerNotFound
		}
		return nil, nil, err
	}

	ids := make([]uuid.UUID, len(req.Products))
	for i, p := range req.Products {
		id, err := uuid.Parse(p.ID)
		if err != nil {
			// An id that is not a UUID cannot match any catalog record.
			return nil, nil, &ProductNotFoundError{ProductID: p.ID}
		}
		ids[i] = id
	}

	found, err := s.products.FindAllByID(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	if len(found) == 0 {
		return nil, nil, ErrProductsNotFound
	}

	catalog := make(map[uuid.UUID]*product.Product, len(found))
	for _, p := range found {
		catalog[p.ID] = p
	}

	for i, p := range req.Products {
		if _, ok := catalog[ids[i]]; !ok {
			return nil, nil, &ProductNotFoundError{ProductID: p.ID}
		}
	}

	// Every line is checked against the catalog quantity as read above,
	// so duplicate ids within one request do not see each other's demand.
	// The commit's conditional decrement still refuses an aggregate
	// oversell made of duplicate lines.
	for i, p := range req.Products {
		if catalog[ids[i]].Quantity < p.Quantity {
			return nil, nil, &InsufficientStockError{ProductID: p.ID, Requested: p.Quantity}
		}
	}

	lines := make([]validatedLine, len(req.Products))
	for i, p := range req.Products {
		lines[i] = validatedLine{
			ProductID: ids[i],
			Quantity:  p.Quantity,
			Price:     catalog[ids[i]].Price,
		}
	}
	return cust, lines, nil
}

// price builds the order's line items from the validated set, fixing each
// price to the snapshot taken during validation. Pure: the output has the
// same length and order as the input.
func price(lines []validatedLine) []*OrderItem {
	items := make([]*OrderItem, len(lines))
	for i, line := range lines {
		items[i] = &OrderItem{
			ID:        uuid.New(),
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		}
	}
	return items
}

func requestedQuantity(requested []ProductRequest, productID uuid.UUID) int {
	for _, p := range requested {
		if p.ID == productID.String() {
			return p.Quantity
		}
	}
	return 0
}

func (s *service) GetOrder(ctx context.Context, id string) (*Order, error) {
	return s.orders.GetByID(ctx, id)
}

func (s *service) ListCustomerOrders(ctx context.Context, customerID string) ([]*Order, error) {
	return s.orders.ListByCustomer(ctx, customerID)
}
