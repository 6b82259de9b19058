package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fekuna/crpm-service/internal/model"
	"github.com/fekuna/crpm-service/internal/pkg/clock"
)

type Repository interface {
	Create(ctx context.Context, product *model.Product) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context) ([]*model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Discontinue(ctx context.Context, id int64) error
}

type sqlRepository struct {
	db    *sqlx.DB
	clock clock.Clock
}

func NewSQLRepository(db *sqlx.DB, clk clock.Clock) Repository {
	return &sqlRepository{db: db, clock: clk}
}

const productColumns = `product_id, product_name, category_id, supplier_id, quantity_per_unit,
	unit_price, units_in_stock, units_on_order, reorder_level, discontinued, description,
	image_url, weight, dimensions, date_added, last_updated`

func (r *sqlRepository) Create(ctx context.Context, p *model.Product) (int64, error) {
	now := r.clock.Now()
	p.DateAdded = now
	p.LastUpdated = now

	query := `
		INSERT INTO products (product_name, category_id, supplier_id, quantity_per_unit, unit_price,
			units_in_stock, units_on_order, reorder_level, discontinued, description, image_url,
			weight, dimensions, date_added, last_updated)
		VALUES (:product_name, :category_id, :supplier_id, :quantity_per_unit, :unit_price,
			:units_in_stock, :units_on_order, :reorder_level, :discontinued, :description, :image_url,
			:weight, :dimensions, :date_added, :last_updated)
	`
	res, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("product insert id: %w", err)
	}
	p.ID = id
	return id, nil
}

func (r *sqlRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	var p model.Product
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = ?`
	if err := r.db.GetContext(ctx, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrProductNotFound
		}
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	return &p, nil
}

// List returns every product, discontinued ones included.
func (r *sqlRepository) List(ctx context.Context) ([]*model.Product, error) {
	products := []*model.Product{}
	query := `SELECT ` + productColumns + ` FROM products`
	if err := r.db.SelectContext(ctx, &products, query); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Update overwrites all fields except id and date_added, and refreshes
// last_updated. Unknown ids are a silent no-op.
func (r *sqlRepository) Update(ctx context.Context, p *model.Product) error {
	p.LastUpdated = r.clock.Now()

	query := `
		UPDATE products
		SET product_name = :product_name, category_id = :category_id, supplier_id = :supplier_id,
			quantity_per_unit = :quantity_per_unit, unit_price = :unit_price,
			units_in_stock = :units_in_stock, units_on_order = :units_on_order,
			reorder_level = :reorder_level, discontinued = :discontinued,
			description = :description, image_url = :image_url, weight = :weight,
			dimensions = :dimensions, last_updated = :last_updated
		WHERE product_id = :product_id
	`
	if _, err := r.db.NamedExecContext(ctx, query, p); err != nil {
		return fmt.Errorf("update product %d: %w", p.ID, err)
	}
	return nil
}

func (r *sqlRepository) Discontinue(ctx context.Context, id int64) error {
	query := `UPDATE products SET discontinued = ?, last_updated = ? WHERE product_id = ?`
	if _, err := r.db.ExecContext(ctx, query, true, r.clock.Now(), id); err != nil {
		return fmt.Errorf("discontinue product %d: %w", id, err)
	}
	return nil
}
