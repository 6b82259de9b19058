package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fekuna/crpm-service/internal/model"
	"github.com/fekuna/crpm-service/internal/pkg/clock"
)

type Repository interface {
	Record(ctx context.Context, purchase *model.Purchase) (int64, error)
	HistoryByCustomer(ctx context.Context, customerID int64) ([]*model.PurchaseHistoryEntry, error)
}

type sqlRepository struct {
	db    *sqlx.DB
	clock clock.Clock
}

func NewSQLRepository(db *sqlx.DB, clk clock.Clock) Repository {
	return &sqlRepository{db: db, clock: clk}
}

// Record inserts the purchase and decrements the product's stock in one
// transaction. Stock is allowed to go negative; missing customers or products
// are rejected by the store's foreign keys.
func (r *sqlRepository) Record(ctx context.Context, p *model.Purchase) (int64, error) {
	p.PurchaseDate = r.clock.Now()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin purchase tx: %w", err)
	}

	res, err := tx.NamedExecContext(ctx, `
		INSERT INTO purchases (customer_id, product_id, quantity, purchase_date)
		VALUES (:customer_id, :product_id, :quantity, :purchase_date)
	`, p)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("insert purchase: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("purchase insert id: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE products SET units_in_stock = units_in_stock - ?, last_updated = ? WHERE product_id = ?`,
		p.Quantity, p.PurchaseDate, p.ProductID,
	)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("decrement stock for product %d: %w", p.ProductID, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit purchase: %w", err)
	}

	p.ID = id
	return id, nil
}

func (r *sqlRepository) HistoryByCustomer(ctx context.Context, customerID int64) ([]*model.PurchaseHistoryEntry, error) {
	entries := []*model.PurchaseHistoryEntry{}
	query := `
		SELECT p.product_id, p.product_name, pr.quantity, pr.purchase_date
		FROM purchases pr
		JOIN products p ON pr.product_id = p.product_id
		WHERE pr.customer_id = ?
	`
	if err := r.db.SelectContext(ctx, &entries, query, customerID); err != nil {
		return nil, fmt.Errorf("purchase history for customer %d: %w", customerID, err)
	}
	return entries, nil
}
