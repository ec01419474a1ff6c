package repository

import (
	"context"
	"database/sql"
	"fmt"

	"storefront/internal/domain"
	"storefront/internal/errors"
)

type MySQLUserRepository struct {
	db *sql.DB
}

func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}

const userByEmailQuery = `
	SELECT id, email, first_name, last_name, phone, password_hash,
	       is_guest, is_verified, created_at, updated_at
	FROM users
	WHERE email = ?`

func scanUser(row *sql.Row, email string) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.Phone,
		&user.PasswordHash, &user.IsGuest, &user.IsVerified,
		&user.CreatedAt, &user.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user with email %s not found", email))
	}
	if err != nil {
		return nil, fmt.Errorf("querying user by email: %w", err)
	}

	return &user, nil
}

// FindByEmailTx looks a user up by exact email match inside the order
// transaction.
func (r *MySQLUserRepository) FindByEmailTx(ctx context.Context, tx *sql.Tx, email string) (*domain.User, error) {
	return scanUser(tx.QueryRowContext(ctx, userByEmailQuery, email), email)
}

// FindByEmailForShareTx is a locking read (FOR SHARE). Under REPEATABLE READ
// a plain select reuses the snapshot pinned by this transaction's first read,
// which cannot see a row another transaction committed since; the locking
// read reads the latest committed version instead. Required when recovering
// from a duplicate-key insert.
func (r *MySQLUserRepository) FindByEmailForShareTx(ctx context.Context, tx *sql.Tx, email string) (*domain.User, error) {
	return scanUser(tx.QueryRowContext(ctx, userByEmailQuery+" FOR SHARE", email), email)
}

// InsertGuestTx creates a guest user row: no password, unverified. The
// unique index on users.email makes concurrent creation race-safe; callers
// detect the duplicate-key error and re-read the winner.
func (r *MySQLUserRepository) InsertGuestTx(ctx context.Context, tx *sql.Tx, user domain.User) (uint, error) {
	query := `
		INSERT INTO users (email, first_name, last_name, phone, password_hash, is_guest, is_verified)
		VALUES (?, ?, ?, ?, NULL, 1, 0)
	`

	result, err := tx.ExecContext(ctx, query, user.Email, user.FirstName, user.LastName, user.Phone)
	if err != nil {
		return 0, fmt.Errorf("inserting guest user: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

func (r *MySQLUserRepository) InsertAddressTx(ctx context.Context, tx *sql.Tx, addr domain.Address) (uint, error) {
	query := `
		INSERT INTO addresses (user_id, address_line1, address_line2, city, state, postal_code, country, is_default)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		addr.UserID, addr.AddressLine1, addr.AddressLine2,
		addr.City, addr.State, addr.PostalCode, addr.Country, addr.IsDefault,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting address: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}
