package repository

import (
	"context"
	"database/sql"
	"fmt"

	"storefront/internal/domain"
	"storefront/internal/errors"
)

type MySQLServiceRepository struct {
	db *sql.DB
}

func NewMySQLServiceRepository(db *sql.DB) *MySQLServiceRepository {
	return &MySQLServiceRepository{db: db}
}

const serviceQuery = `SELECT id, name, slug, price, image_url, is_active FROM services WHERE id = ?`

func (r *MySQLServiceRepository) FindByID(ctx context.Context, id uint) (*domain.Service, error) {
	var s domain.Service
	err := r.db.QueryRowContext(ctx, serviceQuery, id).Scan(
		&s.ID, &s.Name, &s.Slug, &s.Price, &s.ImageURL, &s.IsActive,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("service with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying service by id: %w", err)
	}

	return &s, nil
}

// FindByIDTx is the authoritative in-transaction read used by order
// persistence.
func (r *MySQLServiceRepository) FindByIDTx(ctx context.Context, tx *sql.Tx, id uint) (*domain.Service, error) {
	var s domain.Service
	err := tx.QueryRowContext(ctx, serviceQuery, id).Scan(
		&s.ID, &s.Name, &s.Slug, &s.Price, &s.ImageURL, &s.IsActive,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("service with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying service by id in tx: %w", err)
	}

	return &s, nil
}
