package repository

import (
	"context"
	"database/sql"
	"fmt"

	"storefront/internal/domain"
	"storefront/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

const orderColumns = `
	id, order_number, user_id, status_id,
	subtotal, tax_amount, shipping_amount, discount_amount, total_amount,
	shipping_address_id, billing_address_id, notes,
	customer_email, customer_phone, customer_name,
	payment_method, shipping_method, created_at, updated_at`

// InsertTx writes the order header inside the checkout transaction.
func (r *MySQLOrderRepository) InsertTx(ctx context.Context, tx *sql.Tx, order domain.Order) (uint, error) {
	query := `
		INSERT INTO orders (
			order_number, user_id, status_id,
			subtotal, tax_amount, shipping_amount, discount_amount, total_amount,
			shipping_address_id, billing_address_id, notes,
			customer_email, customer_phone, customer_name,
			payment_method, shipping_method
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		order.OrderNumber, order.UserID, order.StatusID,
		order.Subtotal, order.TaxAmount, order.ShippingAmount,
		order.DiscountAmount, order.TotalAmount,
		order.ShippingAddressID, order.BillingAddressID, order.Notes,
		order.CustomerEmail, order.CustomerPhone, order.CustomerName,
		order.PaymentMethod, order.ShippingMethod,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting order: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

func (r *MySQLOrderRepository) FindByNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE order_number = ?`, orderColumns)

	var order domain.Order
	err := r.db.QueryRowContext(ctx, query, orderNumber).Scan(
		&order.ID, &order.OrderNumber, &order.UserID, &order.StatusID,
		&order.Subtotal, &order.TaxAmount, &order.ShippingAmount,
		&order.DiscountAmount, &order.TotalAmount,
		&order.ShippingAddressID, &order.BillingAddressID, &order.Notes,
		&order.CustomerEmail, &order.CustomerPhone, &order.CustomerName,
		&order.PaymentMethod, &order.ShippingMethod,
		&order.CreatedAt, &order.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order %s not found", orderNumber))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by number: %w", err)
	}

	return &order, nil
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE id = ?`, orderColumns)

	var order domain.Order
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID, &order.OrderNumber, &order.UserID, &order.StatusID,
		&order.Subtotal, &order.TaxAmount, &order.ShippingAmount,
		&order.DiscountAmount, &order.TotalAmount,
		&order.ShippingAddressID, &order.BillingAddressID, &order.Notes,
		&order.CustomerEmail, &order.CustomerPhone, &order.CustomerName,
		&order.PaymentMethod, &order.ShippingMethod,
		&order.CreatedAt, &order.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	return &order, nil
}

// UpdateStatus moves an order to another lifecycle state. Orders are never
// deleted, only status-transitioned.
func (r *MySQLOrderRepository) UpdateStatus(ctx context.Context, id uint, statusID int) error {
	query := `UPDATE orders SET status_id = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, statusID, id)
	if err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}

	return nil
}
