package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fekuna/crpm-service/internal/model"
	"github.com/fekuna/crpm-service/internal/pkg/clock"
	"github.com/fekuna/crpm-service/internal/pkg/database"
)

type Repository interface {
	Create(ctx context.Context, customer *model.Customer) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
	ListActive(ctx context.Context) ([]*model.Customer, error)
	Update(ctx context.Context, customer *model.Customer) error
	Deactivate(ctx context.Context, id int64) error
}

type sqlRepository struct {
	db    *sqlx.DB
	clock clock.Clock
}

func NewSQLRepository(db *sqlx.DB, clk clock.Clock) Repository {
	return &sqlRepository{db: db, clock: clk}
}

const customerColumns = `customer_id, first_name, last_name, email, phone_number, address, city,
	state, postal_code, country, date_of_birth, registration_date, status`

func (r *sqlRepository) Create(ctx context.Context, c *model.Customer) (int64, error) {
	c.RegistrationDate = r.clock.Now()
	c.Status = model.CustomerActive

	query := `
		INSERT INTO customers (first_name, last_name, email, phone_number, address, city, state,
			postal_code, country, date_of_birth, registration_date, status)
		VALUES (:first_name, :last_name, :email, :phone_number, :address, :city, :state,
			:postal_code, :country, :date_of_birth, :registration_date, :status)
	`
	res, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		if database.IsDuplicateKey(err) {
			return 0, model.ErrDuplicateKey
		}
		return 0, fmt.Errorf("insert customer: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("customer insert id: %w", err)
	}
	c.ID = id
	return id, nil
}

func (r *sqlRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	var c model.Customer
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = ?`
	if err := r.db.GetContext(ctx, &c, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("get customer %d: %w", id, err)
	}
	return &c, nil
}

// ListActive returns active customers in store order.
func (r *sqlRepository) ListActive(ctx context.Context) ([]*model.Customer, error) {
	customers := []*model.Customer{}
	query := `SELECT ` + customerColumns + ` FROM customers WHERE status = ?`
	if err := r.db.SelectContext(ctx, &customers, query, model.CustomerActive); err != nil {
		return nil, fmt.Errorf("list active customers: %w", err)
	}
	return customers, nil
}

// Update overwrites every mutable field. Unknown ids affect no rows and are
// not reported.
func (r *sqlRepository) Update(ctx context.Context, c *model.Customer) error {
	query := `
		UPDATE customers
		SET first_name = :first_name, last_name = :last_name, email = :email,
			phone_number = :phone_number, address = :address, city = :city, state = :state,
			postal_code = :postal_code, country = :country, date_of_birth = :date_of_birth
		WHERE customer_id = :customer_id
	`
	if _, err := r.db.NamedExecContext(ctx, query, c); err != nil {
		if database.IsDuplicateKey(err) {
			return model.ErrDuplicateKey
		}
		return fmt.Errorf("update customer %d: %w", c.ID, err)
	}
	return nil
}

func (r *sqlRepository) Deactivate(ctx context.Context, id int64) error {
	query := `UPDATE customers SET status = ? WHERE customer_id = ?`
	if _, err := r.db.ExecContext(ctx, query, model.CustomerInactive, id); err != nil {
		return fmt.Errorf("deactivate customer %d: %w", id, err)
	}
	return nil
}
