package repository

import (
	"context"
	"database/sql"
	"fmt"

	"storefront/internal/errors"
)

type MySQLStatusRepository struct {
	db *sql.DB
}

func NewMySQLStatusRepository(db *sql.DB) *MySQLStatusRepository {
	return &MySQLStatusRepository{db: db}
}

// FindIDByNameTx resolves a status name inside the checkout transaction. A
// missing row is a seed-data defect, not a caller mistake, so it surfaces as
// a ConfigurationError.
func (r *MySQLStatusRepository) FindIDByNameTx(ctx context.Context, tx *sql.Tx, name string) (int, error) {
	var id int
	err := tx.QueryRowContext(ctx, `SELECT id FROM order_statuses WHERE name = ?`, name).Scan(&id)

	if err == sql.ErrNoRows {
		return 0, errors.NewConfigurationError(fmt.Sprintf("order status '%s' is not seeded", name))
	}
	if err != nil {
		return 0, fmt.Errorf("querying order status by name: %w", err)
	}

	return id, nil
}

func (r *MySQLStatusRepository) FindIDByName(ctx context.Context, name string) (int, error) {
	var id int
	err := r.db.QueryRowContext(ctx, `SELECT id FROM order_statuses WHERE name = ?`, name).Scan(&id)

	if err == sql.ErrNoRows {
		return 0, errors.NewNotFoundError(fmt.Sprintf("order status '%s' not found", name))
	}
	if err != nil {
		return 0, fmt.Errorf("querying order status by name: %w", err)
	}

	return id, nil
}

func (r *MySQLStatusRepository) FindNameByID(ctx context.Context, id int) (string, error) {
	var name string
	err := r.db.QueryRowContext(ctx, `SELECT name FROM order_statuses WHERE id = ?`, id).Scan(&name)

	if err == sql.ErrNoRows {
		return "", errors.NewNotFoundError(fmt.Sprintf("order status with id %d not found", id))
	}
	if err != nil {
		return "", fmt.Errorf("querying order status by id: %w", err)
	}

	return name, nil
}
