package model

import "time"

// Purchase is immutable once recorded.
type Purchase struct {
	ID           int64     `db:"purchase_id" json:"id"`
	CustomerID   int64     `db:"customer_id" json:"customer_id"`
	ProductID    int64     `db:"product_id" json:"product_id"`
	Quantity     int64     `db:"quantity" json:"quantity"`
	PurchaseDate time.Time `db:"purchase_date" json:"purchase_date"`
}

// PurchaseHistoryEntry is one purchase joined with its product name.
type PurchaseHistoryEntry struct {
	ProductID    int64     `db:"product_id" json:"product_id"`
	ProductName  string    `db:"product_name" json:"product_name"`
	Quantity     int64     `db:"quantity" json:"quantity"`
	PurchaseDate time.Time `db:"purchase_date" json:"purchase_date"`
}
