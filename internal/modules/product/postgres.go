package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (id, name, price, quantity)
		VALUES ($1,$2,$3,$4)`,
		p.ID, p.Name, p.Price, p.Quantity)
	return err
}

func (r *postgresRepo) FindByName(ctx context.Context, name string) (*Product, error) {
	p := &Product{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, price, quantity, created_at, updated_at
		FROM products WHERE name=$1`, name).
		Scan(&p.ID, &p.Name, &p.Price, &p.Quantity, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) FindAllByID(ctx context.Context, ids []uuid.UUID) ([]*Product, error) {
	strIDs := make([]string, len(ids))
	for i, id := range ids {
		strIDs[i] = id.String()
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, price, quantity, created_at, updated_at
		FROM products WHERE id = ANY($1)`, pq.Array(strIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *postgresRepo) List(ctx context.Context) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, price, quantity, created_at, updated_at
		FROM products ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *postgresRepo) Update(ctx context.Context, p *Product) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products SET name=$1, price=$2, updated_at=NOW() WHERE id=$3`,
		p.Name, p.Price, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, p.ID)
	}
	return nil
}

// UpdateQuantity sets absolute stock levels inside a single transaction so
// a batch is applied whole or not at all.
func (r *postgresRepo) UpdateQuantity(ctx context.Context, updates []QuantityUpdate) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, u := range updates {
		if u.Quantity < 0 {
			return fmt.Errorf("quantity must be >= 0 for product %s", u.ProductID)
		}
		res, err := tx.ExecContext(ctx, `
			UPDATE products SET quantity=$1, updated_at=NOW() WHERE id=$2`,
			u.Quantity, u.ProductID)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("%w: %s", ErrNotFound, u.ProductID)
		}
	}
	return tx.Commit()
}

// DecrementStock applies conditional decrements inside one transaction.
// The WHERE clause re-validates stock at write time, which is what keeps
// two concurrent orders from overselling the same product.
func (r *postgresRepo) DecrementStock(ctx context.Context, decrements []StockDecrement) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, d := range decrements {
		res, err := tx.ExecContext(ctx, `
			UPDATE products SET quantity = quantity - $1, updated_at = NOW()
			WHERE id = $2 AND quantity >= $1`,
			d.Quantity, d.ProductID)
		if err != nil {
			return err
		}
		// A missing row and a failed floor check look the same here; both
		// abort the whole batch.
		if n, _ := res.RowsAffected(); n == 0 {
			return &InsufficientStockError{ProductID: d.ProductID}
		}
	}
	return tx.Commit()
}

func scanProducts(rows *sql.Rows) ([]*Product, error) {
	var products []*Product
	for rows.Next() {
		p := &Product{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Quantity,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
