package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		customer_id INT AUTO_INCREMENT PRIMARY KEY,
		first_name VARCHAR(50) NOT NULL,
		last_name VARCHAR(50) NOT NULL,
		email VARCHAR(100) NOT NULL UNIQUE,
		phone_number VARCHAR(20) NOT NULL,
		address VARCHAR(255) NOT NULL DEFAULT '',
		city VARCHAR(50) NOT NULL DEFAULT '',
		state VARCHAR(50) NOT NULL DEFAULT '',
		postal_code VARCHAR(20) NOT NULL DEFAULT '',
		country VARCHAR(50) NOT NULL DEFAULT '',
		date_of_birth DATE NULL,
		registration_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		status VARCHAR(20) NOT NULL DEFAULT 'Active'
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		product_id INT AUTO_INCREMENT PRIMARY KEY,
		product_name VARCHAR(100) NOT NULL,
		category_id INT NOT NULL DEFAULT 0,
		supplier_id INT NOT NULL DEFAULT 0,
		quantity_per_unit VARCHAR(50) NOT NULL DEFAULT '',
		unit_price DECIMAL(10,2) NOT NULL DEFAULT 0,
		units_in_stock INT NOT NULL DEFAULT 0,
		units_on_order INT NOT NULL DEFAULT 0,
		reorder_level INT NOT NULL DEFAULT 0,
		discontinued TINYINT(1) NOT NULL DEFAULT 0,
		description TEXT NOT NULL,
		image_url VARCHAR(255) NOT NULL DEFAULT '',
		weight DECIMAL(10,2) NOT NULL DEFAULT 0,
		dimensions VARCHAR(50) NOT NULL DEFAULT '',
		date_added TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		last_updated TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS purchases (
		purchase_id INT AUTO_INCREMENT PRIMARY KEY,
		customer_id INT NOT NULL,
		product_id INT NOT NULL,
		quantity INT NOT NULL,
		purchase_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (customer_id) REFERENCES customers(customer_id),
		FOREIGN KEY (product_id) REFERENCES products(product_id)
	)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		customer_id INTEGER PRIMARY KEY AUTOINCREMENT,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone_number TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		state TEXT NOT NULL DEFAULT '',
		postal_code TEXT NOT NULL DEFAULT '',
		country TEXT NOT NULL DEFAULT '',
		date_of_birth DATE NULL,
		registration_date DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		status TEXT NOT NULL DEFAULT 'Active'
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		product_id INTEGER PRIMARY KEY AUTOINCREMENT,
		product_name TEXT NOT NULL,
		category_id INTEGER NOT NULL DEFAULT 0,
		supplier_id INTEGER NOT NULL DEFAULT 0,
		quantity_per_unit TEXT NOT NULL DEFAULT '',
		unit_price DECIMAL(10,2) NOT NULL DEFAULT 0,
		units_in_stock INTEGER NOT NULL DEFAULT 0,
		units_on_order INTEGER NOT NULL DEFAULT 0,
		reorder_level INTEGER NOT NULL DEFAULT 0,
		discontinued BOOLEAN NOT NULL DEFAULT 0,
		description TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT '',
		weight DECIMAL(10,2) NOT NULL DEFAULT 0,
		dimensions TEXT NOT NULL DEFAULT '',
		date_added DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		last_updated DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS purchases (
		purchase_id INTEGER PRIMARY KEY AUTOINCREMENT,
		customer_id INTEGER NOT NULL REFERENCES customers(customer_id),
		product_id INTEGER NOT NULL REFERENCES products(product_id),
		quantity INTEGER NOT NULL,
		purchase_date DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

// EnsureSchema creates the customers, products and purchases tables if they
// are missing. Existing tables are left untouched.
func EnsureSchema(ctx context.Context, db *sqlx.DB, driver string) error {
	stmts := mysqlSchema
	if driver == DriverSQLite {
		stmts = sqliteSchema
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
