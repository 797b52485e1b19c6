package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Service defines the interface for customer-related business logic.
type Service interface {
	CreateCustomer(ctx context.Context, name, email string) (*Customer, error)
	GetCustomer(ctx context.Context, id string) (*Customer, error)
}

type service struct {
	repo Repository
}

// NewService creates a new customer service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateCustomer(ctx context.Context, name, email string) (*Customer, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("email %s is already in use", email)
	}

	c := &Customer{
		ID:    uuid.New(),
		Name:  name,
		Email: email,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetCustomer(ctx context.Context, id string) (*Customer, error) {
	return s.repo.FindByID(ctx, id)
}
