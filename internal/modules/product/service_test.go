package product

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	p, err := svc.CreateProduct(context.Background(), CreateProductRequest{
		Name: "Product A", Price: 5.00, Quantity: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, "Product A", p.Name)
	assert.Equal(t, 10, p.Quantity)

	_, err = svc.CreateProduct(context.Background(), CreateProductRequest{
		Name: "Product A", Price: 6.00, Quantity: 1,
	})
	assert.ErrorContains(t, err, "already exists")
}

func TestCreateProduct_RejectsInvalidInput(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	tests := []struct {
		name string
		req  CreateProductRequest
	}{
		{name: "missing name", req: CreateProductRequest{Price: 1, Quantity: 1}},
		{name: "negative price", req: CreateProductRequest{Name: "X", Price: -1, Quantity: 1}},
		{name: "negative quantity", req: CreateProductRequest{Name: "X", Price: 1, Quantity: -1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateProduct(context.Background(), tc.req)
			assert.Error(t, err)
		})
	}
}

func TestUpdateProduct(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)

	p, err := svc.CreateProduct(context.Background(), CreateProductRequest{
		Name: "Product A", Price: 5.00, Quantity: 10,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProduct(context.Background(), p.ID.String(), CreateProductRequest{
		Name: "Product A", Price: 9.99,
	})
	require.NoError(t, err)
	assert.Equal(t, 9.99, updated.Price)
	// Stock is not touched by a catalog update.
	assert.Equal(t, 10, quantityOf(t, repo, p.ID))

	_, err = svc.UpdateProduct(context.Background(), uuid.NewString(), CreateProductRequest{
		Name: "X", Price: 1,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdjustStock(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)

	p, err := svc.CreateProduct(context.Background(), CreateProductRequest{
		Name: "Product A", Price: 5.00, Quantity: 10,
	})
	require.NoError(t, err)

	updated, err := svc.AdjustStock(context.Background(), p.ID.String(), 25)
	require.NoError(t, err)
	assert.Equal(t, 25, updated.Quantity)
	assert.Equal(t, 25, quantityOf(t, repo, p.ID))

	_, err = svc.AdjustStock(context.Background(), p.ID.String(), -1)
	assert.Error(t, err)

	_, err = svc.AdjustStock(context.Background(), uuid.NewString(), 5)
	assert.ErrorIs(t, err, ErrNotFound)
}
