package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalogue entry. Discontinued is its soft-delete flag; a
// discontinued product remains listed and reportable.
type Product struct {
	ID              int64           `db:"product_id" json:"id"`
	Name            string          `db:"product_name" json:"name"`
	CategoryID      int64           `db:"category_id" json:"category_id"`
	SupplierID      int64           `db:"supplier_id" json:"supplier_id"`
	QuantityPerUnit string          `db:"quantity_per_unit" json:"quantity_per_unit"`
	UnitPrice       decimal.Decimal `db:"unit_price" json:"unit_price"`
	UnitsInStock    int64           `db:"units_in_stock" json:"units_in_stock"`
	UnitsOnOrder    int64           `db:"units_on_order" json:"units_on_order"`
	ReorderLevel    int64           `db:"reorder_level" json:"reorder_level"`
	Discontinued    bool            `db:"discontinued" json:"discontinued"`
	Description     string          `db:"description" json:"description"`
	ImageURL        string          `db:"image_url" json:"image_url"`
	Weight          decimal.Decimal `db:"weight" json:"weight"`
	Dimensions      string          `db:"dimensions" json:"dimensions"`
	DateAdded       time.Time       `db:"date_added" json:"date_added"`
	LastUpdated     time.Time       `db:"last_updated" json:"last_updated"`
}

// NeedsReorder reports whether stock has dropped to the reorder threshold.
func (p *Product) NeedsReorder() bool {
	return !p.Discontinued && p.UnitsInStock <= p.ReorderLevel
}
