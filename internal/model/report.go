package model

import "github.com/shopspring/decimal"

// DefaultTopCustomersLimit is used when a caller asks for a non-positive limit.
const DefaultTopCustomersLimit = 10

// SalesReport totals every purchase. Revenue is priced at each product's
// current unit price, not the price at purchase time.
type SalesReport struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalSales   int64           `json:"total_sales"`
}

type TopCustomer struct {
	CustomerID int64           `db:"customer_id" json:"customer_id"`
	FirstName  string          `db:"first_name" json:"first_name"`
	LastName   string          `db:"last_name" json:"last_name"`
	TotalSpent decimal.Decimal `db:"total_spent" json:"total_spent"`
}

type ProductPerformance struct {
	ProductID int64  `db:"product_id" json:"product_id"`
	Name      string `db:"product_name" json:"name"`
	TotalSold int64  `db:"total_sold" json:"total_sold"`
}
