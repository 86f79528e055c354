// Package profiles stores the per-user profile documents.
package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophstore/internal/common"
	"github.com/dmitrijs2005/gophstore/internal/dbx"
	"github.com/dmitrijs2005/gophstore/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Profile) error {
	query :=
		`INSERT INTO profiles (user_id, name, degree, grad_year, email)
		 VALUES ($1, $2, $3, $4, $5)`

	if _, err := r.db.ExecContext(ctx, query, p.UserID, p.Name, p.Degree, p.GradYear, p.Email); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Get returns the profile of userID or common.ErrorNotFound.
func (r *PostgresRepository) Get(ctx context.Context, userID string) (*models.Profile, error) {
	query :=
		`SELECT user_id, name, degree, grad_year, email FROM profiles
		 WHERE user_id = $1`

	p := &models.Profile{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&p.UserID, &p.Name, &p.Degree, &p.GradYear, &p.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

// Update overwrites the editable fields. Empty strings and a zero year keep
// the stored value. The email is never changed here.
func (r *PostgresRepository) Update(ctx context.Context, userID string, upd models.ProfileUpdate) (*models.Profile, error) {
	query :=
		`UPDATE profiles SET
		   name = COALESCE(NULLIF($2, ''), name),
		   degree = COALESCE(NULLIF($3, ''), degree),
		   grad_year = COALESCE(NULLIF($4, 0), grad_year)
		 WHERE user_id = $1
		 RETURNING user_id, name, degree, grad_year, email`

	p := &models.Profile{}
	err := r.db.QueryRowContext(ctx, query, userID, upd.Name, upd.Degree, upd.GradYear).
		Scan(&p.UserID, &p.Name, &p.Degree, &p.GradYear, &p.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}
