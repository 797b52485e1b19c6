package customer

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL customer repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, c *Customer) error {
	query := `
		INSERT INTO customers (id, name, email)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.Email)
	return err
}

func (r *postgresRepository) FindByID(ctx context.Context, id string) (*Customer, error) {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		// An id that is not a UUID cannot match any record.
		return nil, ErrNotFound
	}

	c := &Customer{}
	query := `
		SELECT id, name, email, created_at, updated_at
		FROM customers
		WHERE id = $1
	`
	err = r.db.QueryRowContext(ctx, query, parsedID).Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*Customer, error) {
	c := &Customer{}
	query := `
		SELECT id, name, email, created_at, updated_at
		FROM customers
		WHERE LOWER(email) = LOWER($1)
	`
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}
