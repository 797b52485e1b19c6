package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Service defines catalog business logic.
type Service interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error)
	UpdateProduct(ctx context.Context, id string, req CreateProductRequest) (*Product, error)
	ListProducts(ctx context.Context) ([]*Product, error)
	AdjustStock(ctx context.Context, id string, quantity int) (*Product, error)
}

// CreateProductRequest holds the data for creating a product.
type CreateProductRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("price must be >= 0")
	}
	if req.Quantity < 0 {
		return nil, fmt.Errorf("quantity must be >= 0")
	}

	existing, err := s.repo.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("product %s already exists", req.Name)
	}

	p := &Product{
		ID:       uuid.New(),
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) UpdateProduct(ctx context.Context, id string, req CreateProductRequest) (*Product, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("price must be >= 0")
	}
	pid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid product id: %w", err)
	}

	found, err := s.repo.FindAllByID(ctx, []uuid.UUID{pid})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, ErrNotFound
	}

	p := found[0]
	p.Name = req.Name
	p.Price = req.Price
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) ListProducts(ctx context.Context) ([]*Product, error) {
	return s.repo.List(ctx)
}

func (s *service) AdjustStock(ctx context.Context, id string, quantity int) (*Product, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("quantity must be >= 0")
	}
	pid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid product id: %w", err)
	}

	found, err := s.repo.FindAllByID(ctx, []uuid.UUID{pid})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, ErrNotFound
	}

	if err := s.repo.UpdateQuantity(ctx, []QuantityUpdate{{ProductID: pid, Quantity: quantity}}); err != nil {
		return nil, err
	}
	p := found[0]
	p.Quantity = quantity
	return p, nil
}
