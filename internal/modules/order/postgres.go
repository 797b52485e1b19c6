package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/storefronthq/storefront-backend/internal/modules/product"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

// Create inserts the order and its items and decrements product stock, all
// inside a single transaction. The decrement is conditional on the current
// quantity, so a concurrent order that already drained the stock makes
// this one roll back instead of overselling.
func (r *postgresRepo) Create(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, customer_id)
		VALUES ($1,$2)`,
		o.ID, o.CustomerID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, item := range o.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, product_id, quantity, price)
			VALUES ($1,$2,$3,$4,$5)`,
			item.ID, o.ID, item.ProductID, item.Quantity, item.Price)
		if err != nil {
			return fmt.Errorf("insert order_item: %w", err)
		}

		res, err := tx.ExecContext(ctx, `
			UPDATE products SET quantity = quantity - $1, updated_at = NOW()
			WHERE id = $2 AND quantity >= $1`,
			item.Quantity, item.ProductID)
		if err != nil {
			return fmt.Errorf("decrement stock: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return &product.InsufficientStockError{ProductID: item.ProductID}
		}
	}

	return tx.Commit()
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Order, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	o := &Order{}
	err = r.db.QueryRowContext(ctx, `
		SELECT id, customer_id, created_at, updated_at
		FROM orders WHERE id=$1`, uid).
		Scan(&o.ID, &o.CustomerID, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("order %s not found", id)
	}
	if err != nil {
		return nil, err
	}
	o.Items, err = r.listItems(ctx, o.ID)
	return o, err
}

func (r *postgresRepo) ListByCustomer(ctx context.Context, customerID string) ([]*Order, error) {
	uid, err := uuid.Parse(customerID)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, customer_id, created_at, updated_at
		FROM orders WHERE customer_id=$1 ORDER BY created_at DESC`, uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o := &Order{}
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range orders {
		if o.Items, err = r.listItems(ctx, o.ID); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *postgresRepo) listItems(ctx context.Context, orderID uuid.UUID) ([]*OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, quantity, price
		FROM order_items WHERE order_id=$1`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*OrderItem
	for rows.Next() {
		item := &OrderItem{}
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID,
			&item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
