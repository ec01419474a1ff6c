package repository

import (
	"context"
	"database/sql"
	"fmt"

	"storefront/internal/domain"
)

type MySQLOrderServiceItemRepository struct {
	db *sql.DB
}

func NewMySQLOrderServiceItemRepository(db *sql.DB) *MySQLOrderServiceItemRepository {
	return &MySQLOrderServiceItemRepository{db: db}
}

func (r *MySQLOrderServiceItemRepository) InsertTx(ctx context.Context, tx *sql.Tx, item domain.OrderServiceItem) (uint, error) {
	query := `
		INSERT INTO order_service_items (order_id, service_id, service_schedule_id, service_name, quantity, unit_price, total_price)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		item.OrderID, item.ServiceID, item.ServiceScheduleID,
		item.ServiceName, item.Quantity, item.UnitPrice, item.TotalPrice,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting order service item: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

func (r *MySQLOrderServiceItemRepository) ListByOrderID(ctx context.Context, orderID uint) ([]domain.OrderServiceItem, error) {
	query := `
		SELECT id, order_id, service_id, service_schedule_id, service_name, quantity, unit_price, total_price
		FROM order_service_items
		WHERE order_id = ?
	`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("querying order service items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderServiceItem
	for rows.Next() {
		var item domain.OrderServiceItem
		err := rows.Scan(
			&item.ID, &item.OrderID, &item.ServiceID, &item.ServiceScheduleID,
			&item.ServiceName, &item.Quantity, &item.UnitPrice, &item.TotalPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning order service item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order service item rows: %w", err)
	}

	return items, nil
}
