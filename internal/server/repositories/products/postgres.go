// Package products is the PostgreSQL store of product documents. Every
// query is scoped by owner; rows of other owners are invisible.
package products

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophstore/internal/common"
	"github.com/dmitrijs2005/gophstore/internal/dbx"
	"github.com/dmitrijs2005/gophstore/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// invalidTextRepresentation is raised when an id is not a valid uuid.
const invalidTextRepresentation = "22P02"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts p and fills the store-assigned id, sold flag and
// creation time.
func (r *PostgresRepository) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	query :=
		`INSERT INTO products (owner_id, name, price, image_ref)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, sold, created_at`

	err := r.db.QueryRowContext(ctx, query, p.OwnerID, p.Name, p.Price, p.ImageRef).
		Scan(&p.ID, &p.Sold, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

// ListByOwner returns ownerID's products, newest first.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Product, error) {
	query :=
		`SELECT id, owner_id, name, price, sold, image_ref, created_at FROM products
		 WHERE owner_id = $1
		 ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Product
	for rows.Next() {
		p := &models.Product{}
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Price, &p.Sold, &p.ImageRef, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// MarkSold flags the product id of ownerID as sold. Unknown or malformed
// ids and ids of other owners yield common.ErrorNotFound.
func (r *PostgresRepository) MarkSold(ctx context.Context, ownerID, id string) error {
	query :=
		`UPDATE products SET sold = true
		 WHERE id = $1 AND owner_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == invalidTextRepresentation {
			return common.ErrorNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
