package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/fekuna/crpm-service/internal/model"
)

type Repository interface {
	SalesReport(ctx context.Context) (*model.SalesReport, error)
	TopCustomers(ctx context.Context, limit int) ([]*model.TopCustomer, error)
	ProductPerformance(ctx context.Context) ([]*model.ProductPerformance, error)
}

type sqlRepository struct {
	db *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) Repository {
	return &sqlRepository{db: db}
}

// Revenue figures multiply by the product's current unit_price. Repricing a
// product therefore changes historical revenue; there is no price snapshot on
// purchases.

func (r *sqlRepository) SalesReport(ctx context.Context) (*model.SalesReport, error) {
	var row struct {
		TotalRevenue decimal.NullDecimal `db:"total_revenue"`
		TotalSales   int64               `db:"total_sales"`
	}
	query := `
		SELECT SUM(pr.quantity * p.unit_price) AS total_revenue, COUNT(pr.purchase_id) AS total_sales
		FROM purchases pr
		JOIN products p ON pr.product_id = p.product_id
	`
	if err := r.db.GetContext(ctx, &row, query); err != nil {
		return nil, fmt.Errorf("sales report: %w", err)
	}

	report := &model.SalesReport{TotalRevenue: decimal.Zero, TotalSales: row.TotalSales}
	if row.TotalRevenue.Valid {
		report.TotalRevenue = row.TotalRevenue.Decimal.Round(2)
	}
	return report, nil
}

func (r *sqlRepository) TopCustomers(ctx context.Context, limit int) ([]*model.TopCustomer, error) {
	customers := []*model.TopCustomer{}
	query := `
		SELECT c.customer_id, c.first_name, c.last_name, SUM(pr.quantity * p.unit_price) AS total_spent
		FROM purchases pr
		JOIN customers c ON pr.customer_id = c.customer_id
		JOIN products p ON pr.product_id = p.product_id
		GROUP BY c.customer_id, c.first_name, c.last_name
		ORDER BY total_spent DESC
		LIMIT ?
	`
	if err := r.db.SelectContext(ctx, &customers, query, limit); err != nil {
		return nil, fmt.Errorf("top customers: %w", err)
	}
	for _, c := range customers {
		c.TotalSpent = c.TotalSpent.Round(2)
	}
	return customers, nil
}

func (r *sqlRepository) ProductPerformance(ctx context.Context) ([]*model.ProductPerformance, error) {
	rows := []*model.ProductPerformance{}
	query := `
		SELECT p.product_id, p.product_name, SUM(pr.quantity) AS total_sold
		FROM purchases pr
		JOIN products p ON pr.product_id = p.product_id
		GROUP BY p.product_id, p.product_name
		ORDER BY total_sold DESC
	`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("product performance: %w", err)
	}
	return rows, nil
}
