package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/crpm-service/internal/model"
	"github.com/fekuna/crpm-service/internal/pkg/clock"
	"github.com/fekuna/crpm-service/internal/pkg/database/dbtest"
	productrepo "github.com/fekuna/crpm-service/internal/product/repository"
	purchaserepo "github.com/fekuna/crpm-service/internal/purchase/repository"
)

type fixture struct {
	db        *sqlx.DB
	reports   Repository
	products  productrepo.Repository
	purchases purchaserepo.Repository
}

func newFixture(t *testing.T) *fixture {
	db := dbtest.NewSQLite(t)
	clk := clock.NewMockClock(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	return &fixture{
		db:        db,
		reports:   NewSQLRepository(db),
		products:  productrepo.NewSQLRepository(db, clk),
		purchases: purchaserepo.NewSQLRepository(db, clk),
	}
}

func (f *fixture) customer(t *testing.T, id int64, first string) {
	t.Helper()
	f.db.MustExec(`INSERT INTO customers (customer_id, first_name, last_name, email, phone_number)
		VALUES (?, ?, 'Doe', ?, '0')`, id, first, fmt.Sprintf("%s@example.com", first))
}

func (f *fixture) product(t *testing.T, name, price string) int64 {
	t.Helper()
	id, err := f.products.Create(context.Background(), &model.Product{
		Name:         name,
		UnitPrice:    decimal.RequireFromString(price),
		UnitsInStock: 100,
	})
	require.NoError(t, err)
	return id
}

func (f *fixture) buy(t *testing.T, customerID, productID, qty int64) {
	t.Helper()
	_, err := f.purchases.Record(context.Background(), &model.Purchase{
		CustomerID: customerID, ProductID: productID, Quantity: qty,
	})
	require.NoError(t, err)
}

func TestSalesReport(t *testing.T) {
	ctx := context.Background()

	t.Run("empty purchases", func(t *testing.T) {
		f := newFixture(t)
		report, err := f.reports.SalesReport(ctx)
		require.NoError(t, err)
		assert.True(t, report.TotalRevenue.IsZero())
		assert.Equal(t, int64(0), report.TotalSales)
	})

	t.Run("sums quantity times unit price", func(t *testing.T) {
		f := newFixture(t)
		f.customer(t, 1, "ann")
		ten := f.product(t, "Ten", "10.00")
		five := f.product(t, "Five", "5.00")
		f.buy(t, 1, ten, 2)
		f.buy(t, 1, five, 3)

		report, err := f.reports.SalesReport(ctx)
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("35.00").Equal(report.TotalRevenue), report.TotalRevenue.String())
		assert.Equal(t, int64(2), report.TotalSales)
	})

	t.Run("uses current unit price", func(t *testing.T) {
		f := newFixture(t)
		f.customer(t, 1, "ann")
		id := f.product(t, "Ten", "10.00")
		f.buy(t, 1, id, 2)

		p, err := f.products.GetByID(ctx, id)
		require.NoError(t, err)
		p.UnitPrice = decimal.RequireFromString("12.50")
		require.NoError(t, f.products.Update(ctx, p))

		report, err := f.reports.SalesReport(ctx)
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("25").Equal(report.TotalRevenue), report.TotalRevenue.String())
	})
}

func TestTopCustomers(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	price := f.product(t, "Widget", "2.50")

	for i := int64(1); i <= 12; i++ {
		f.customer(t, i, fmt.Sprintf("c%d", i))
		f.buy(t, i, price, i)
	}

	top, err := f.reports.TopCustomers(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 10)

	assert.Equal(t, int64(12), top[0].CustomerID)
	assert.True(t, decimal.RequireFromString("30").Equal(top[0].TotalSpent), top[0].TotalSpent.String())
	for i := 1; i < len(top); i++ {
		assert.True(t, top[i-1].TotalSpent.GreaterThanOrEqual(top[i].TotalSpent))
	}

	three, err := f.reports.TopCustomers(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, three, 3)
}

func TestTopCustomers_AggregatesPerCustomer(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.customer(t, 1, "ann")
	f.customer(t, 2, "bob")
	a := f.product(t, "A", "10")
	b := f.product(t, "B", "1")

	f.buy(t, 1, a, 1)
	f.buy(t, 1, b, 5)
	f.buy(t, 2, a, 1)

	top, err := f.reports.TopCustomers(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "ann", top[0].FirstName)
	assert.True(t, decimal.NewFromInt(15).Equal(top[0].TotalSpent))
	assert.True(t, decimal.NewFromInt(10).Equal(top[1].TotalSpent))
}

func TestProductPerformance_IncludesDiscontinued(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.customer(t, 1, "ann")
	f.customer(t, 2, "bob")
	a := f.product(t, "A", "1")
	b := f.product(t, "B", "1")
	f.product(t, "Unsold", "1")

	f.buy(t, 1, a, 2)
	f.buy(t, 2, a, 3)
	f.buy(t, 1, b, 9)
	require.NoError(t, f.products.Discontinue(ctx, b))

	perf, err := f.reports.ProductPerformance(ctx)
	require.NoError(t, err)
	require.Len(t, perf, 2)

	assert.Equal(t, "B", perf[0].Name)
	assert.Equal(t, int64(9), perf[0].TotalSold)
	assert.Equal(t, "A", perf[1].Name)
	assert.Equal(t, int64(5), perf[1].TotalSold)
}
