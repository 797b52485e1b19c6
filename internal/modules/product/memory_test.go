package product

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, repo Repository, name string, price float64, quantity int) *Product {
	t.Helper()
	p := &Product{ID: uuid.New(), Name: name, Price: price, Quantity: quantity}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func quantityOf(t *testing.T, repo Repository, id uuid.UUID) int {
	t.Helper()
	found, err := repo.FindAllByID(context.Background(), []uuid.UUID{id})
	require.NoError(t, err)
	require.Len(t, found, 1)
	return found[0].Quantity
}

func TestFindAllByID_ReturnsOnlyMatches(t *testing.T) {
	repo := NewMemoryRepository()
	a := seed(t, repo, "Product A", 5.00, 10)
	b := seed(t, repo, "Product B", 3.00, 2)

	found, err := repo.FindAllByID(context.Background(), []uuid.UUID{a.ID, uuid.New(), b.ID})
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestDecrementStock_FloorCheck(t *testing.T) {
	repo := NewMemoryRepository()
	p := seed(t, repo, "Product A", 5.00, 3)

	err := repo.DecrementStock(context.Background(), []StockDecrement{{ProductID: p.ID, Quantity: 4}})
	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, p.ID, stockErr.ProductID)
	assert.Equal(t, 3, quantityOf(t, repo, p.ID))

	require.NoError(t, repo.DecrementStock(context.Background(), []StockDecrement{{ProductID: p.ID, Quantity: 3}}))
	assert.Equal(t, 0, quantityOf(t, repo, p.ID))
}

func TestDecrementStock_BatchIsAllOrNothing(t *testing.T) {
	repo := NewMemoryRepository()
	a := seed(t, repo, "Product A", 5.00, 10)
	b := seed(t, repo, "Product B", 3.00, 2)

	err := repo.DecrementStock(context.Background(), []StockDecrement{
		{ProductID: a.ID, Quantity: 3},
		{ProductID: b.ID, Quantity: 5},
	})

	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, b.ID, stockErr.ProductID)
	// The first decrement must not stick when a later one fails.
	assert.Equal(t, 10, quantityOf(t, repo, a.ID))
	assert.Equal(t, 2, quantityOf(t, repo, b.ID))
}

func TestDecrementStock_DuplicateIDsInBatchCannotOversell(t *testing.T) {
	repo := NewMemoryRepository()
	p := seed(t, repo, "Product A", 5.00, 10)

	err := repo.DecrementStock(context.Background(), []StockDecrement{
		{ProductID: p.ID, Quantity: 6},
		{ProductID: p.ID, Quantity: 6},
	})

	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 10, quantityOf(t, repo, p.ID))

	require.NoError(t, repo.DecrementStock(context.Background(), []StockDecrement{
		{ProductID: p.ID, Quantity: 6},
		{ProductID: p.ID, Quantity: 4},
	}))
	assert.Equal(t, 0, quantityOf(t, repo, p.ID))
}

func TestDecrementStock_Concurrent_NeverNegative(t *testing.T) {
	const (
		initialStock = 25
		workers      = 60
	)

	repo := NewMemoryRepository()
	p := seed(t, repo, "Product A", 5.00, initialStock)

	var wg sync.WaitGroup
	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- repo.DecrementStock(context.Background(),
				[]StockDecrement{{ProductID: p.ID, Quantity: 1}})
		}()
	}
	wg.Wait()
	close(results)

	var successes int
	for err := range results {
		if err == nil {
			successes++
		}
	}
	assert.Equal(t, initialStock, successes)
	assert.Equal(t, 0, quantityOf(t, repo, p.ID))
}

func TestUpdateQuantity_BatchValidatedBeforeApply(t *testing.T) {
	repo := NewMemoryRepository()
	a := seed(t, repo, "Product A", 5.00, 10)

	err := repo.UpdateQuantity(context.Background(), []QuantityUpdate{
		{ProductID: a.ID, Quantity: 7},
		{ProductID: uuid.New(), Quantity: 1},
	})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 10, quantityOf(t, repo, a.ID))

	require.NoError(t, repo.UpdateQuantity(context.Background(),
		[]QuantityUpdate{{ProductID: a.ID, Quantity: 7}}))
	assert.Equal(t, 7, quantityOf(t, repo, a.ID))
}
