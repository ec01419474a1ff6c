package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"

	"storefront/internal/domain"
)

// SetupTestDB opens the local test database. Expects a MySQL instance on
// localhost:3306 with a database named 'storefront_test'; tests are skipped
// when it is unavailable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/storefront_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB truncates all storefront tables and closes the pool.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{
		"order_service_items", "order_items", "orders",
		"addresses", "users",
		"product_variants", "products", "services", "order_statuses",
	}
	for _, table := range tables {
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the storefront schema and seeds the order status
// rows the checkout path depends on.
func SetupTestTables(t *testing.T, db *sql.DB) {
	statements := []struct {
		name  string
		query string
	}{
		{"order_statuses", `
			CREATE TABLE IF NOT EXISTS order_statuses (
				id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
				name VARCHAR(50) NOT NULL UNIQUE
			)`},
		{"users", `
			CREATE TABLE IF NOT EXISTS users (
				id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
				email VARCHAR(150) NOT NULL UNIQUE,
				first_name VARCHAR(100) NOT NULL DEFAULT '',
				last_name VARCHAR(100) NOT NULL DEFAULT '',
				phone VARCHAR(30),
				password_hash VARCHAR(255),
				is_guest TINYINT(1) NOT NULL DEFAULT 0,
				is_verified TINYINT(1) NOT NULL DEFAULT 0,
				created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
			)`},
		{"addresses", `
			CREATE TABLE IF NOT EXISTS addresses (
				id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
				user_id INT UNSIGNED NOT NULL,
				address_line1 VARCHAR(255) NOT NULL,
				address_line2 VARCHAR(255),
				city VARCHAR(100) NOT NULL,
				state VARCHAR(100) NOT NULL,
				postal_code VARCHAR(20) NOT NULL,
				country VARCHAR(100) NOT NULL,
				is_default TINYINT(1) NOT NULL DEFAULT 0,
				created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (user_id) REFERENCES users(id),
				INDEX idx_user (user_id)
			)`},
		{"products", `
			CREATE TABLE IF NOT EXISTS products (
				id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
				name VARCHAR(255) NOT NULL,
				slug VARCHAR(255) NOT NULL,
				sku VARCHAR(100),
				price DECIMAL(10,2) NOT NULL,
				image_url VARCHAR(500),
				is_active TINYINT(1) NOT NULL DEFAULT 1,
				created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
			)`},
		{"product_variants", `
			CREATE TABLE IF NOT EXISTS product_variants (
				id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
				product_id INT UNSIGNED NOT NULL,
				name VARCHAR(255) NOT NULL,
				price DECIMAL(10,2) NOT NULL,
				FOREIGN KEY (product_id) REFERENCES products(id),
				INDEX idx_product (product_id)
			)`},
		{"services", `
			CREATE TABLE IF NOT EXISTS services (
				id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
				name VARCHAR(255) NOT NULL,
				slug VARCHAR(255) NOT NULL,
				price DECIMAL(10,2) NOT NULL,
				image_url VARCHAR(500),
				is_active TINYINT(1) NOT NULL DEFAULT 1
			)`},
		{"orders", `
			CREATE TABLE IF NOT EXISTS orders (
				id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
				order_number VARCHAR(50) NOT NULL UNIQUE,
				user_id INT UNSIGNED NOT NULL,
				status_id INT NOT NULL,
				subtotal DECIMAL(10,2) NOT NULL DEFAULT 0.00,
				tax_amount DECIMAL(10,2) NOT NULL DEFAULT 0.00,
				shipping_amount DECIMAL(10,2) NOT NULL DEFAULT 0.00,
				discount_amount DECIMAL(10,2) NOT NULL DEFAULT 0.00,
				total_amount DECIMAL(10,2) NOT NULL,
				shipping_address_id INT UNSIGNED,
				billing_address_id INT UNSIGNED,
				notes TEXT,
				customer_email VARCHAR(150) NOT NULL,
				customer_phone VARCHAR(30),
				customer_name VARCHAR(200),
				payment_method VARCHAR(50),
				shipping_method VARCHAR(50),
				created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
				FOREIGN KEY (user_id) REFERENCES users(id),
				FOREIGN KEY (status_id) REFERENCES order_statuses(id),
				INDEX idx_user (user_id)
			)`},
		{"order_items", `
			CREATE TABLE IF NOT EXISTS order_items (
				id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
				order_id INT UNSIGNED NOT NULL,
				product_id INT UNSIGNED NOT NULL,
				product_variant_id INT UNSIGNED,
				product_name VARCHAR(255) NOT NULL,
				product_sku VARCHAR(100),
				quantity INT NOT NULL DEFAULT 1,
				unit_price DECIMAL(10,2) NOT NULL,
				total_price DECIMAL(10,2) NOT NULL,
				FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE,
				INDEX idx_order (order_id)
			)`},
		{"order_service_items", `
			CREATE TABLE IF NOT EXISTS order_service_items (
				id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
				order_id INT UNSIGNED NOT NULL,
				service_id INT UNSIGNED NOT NULL,
				service_schedule_id INT UNSIGNED,
				service_name VARCHAR(255) NOT NULL,
				quantity INT NOT NULL DEFAULT 1,
				unit_price DECIMAL(10,2) NOT NULL,
				total_price DECIMAL(10,2) NOT NULL,
				FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE,
				INDEX idx_order (order_id)
			)`},
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt.query); err != nil {
			t.Logf("failed to create table %s: %v", stmt.name, err)
		}
	}

	statuses := []string{
		domain.OrderStatusPending,
		domain.OrderStatusProcessing,
		domain.OrderStatusCompleted,
		domain.OrderStatusCancelled,
	}
	for _, status := range statuses {
		if _, err := db.Exec("INSERT IGNORE INTO order_statuses (name) VALUES (?)", status); err != nil {
			t.Logf("failed to seed status %s: %v", status, err)
		}
	}
}
