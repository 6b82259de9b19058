package handler

import (
	"github.com/shopspring/decimal"

	"github.com/fekuna/crpm-service/internal/model"
)

type ProductFields struct {
	Name            string          `json:"name"`
	CategoryID      int64           `json:"category_id"`
	SupplierID      int64           `json:"supplier_id"`
	QuantityPerUnit string          `json:"quantity_per_unit"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	UnitsInStock    int64           `json:"units_in_stock"`
	UnitsOnOrder    int64           `json:"units_on_order"`
	ReorderLevel    int64           `json:"reorder_level"`
	Discontinued    bool            `json:"discontinued"`
	Description     string          `json:"description"`
	ImageURL        string          `json:"image_url"`
	Weight          decimal.Decimal `json:"weight"`
	Dimensions      string          `json:"dimensions"`
}

func (f *ProductFields) toModel(id int64) *model.Product {
	return &model.Product{
		ID:              id,
		Name:            f.Name,
		CategoryID:      f.CategoryID,
		SupplierID:      f.SupplierID,
		QuantityPerUnit: f.QuantityPerUnit,
		UnitPrice:       f.UnitPrice,
		UnitsInStock:    f.UnitsInStock,
		UnitsOnOrder:    f.UnitsOnOrder,
		ReorderLevel:    f.ReorderLevel,
		Discontinued:    f.Discontinued,
		Description:     f.Description,
		ImageURL:        f.ImageURL,
		Weight:          f.Weight,
		Dimensions:      f.Dimensions,
	}
}

type CreateProductRequest struct {
	ProductFields
}

type CreateProductResponse struct {
	ID int64 `json:"id"`
}

type GetProductRequest struct {
	ID int64 `json:"id"`
}

type GetProductResponse struct {
	Product *model.Product `json:"product"`
}

type ListProductsRequest struct{}

type ListProductsResponse struct {
	Products []*model.Product `json:"products"`
}

type UpdateProductRequest struct {
	ID int64 `json:"id"`
	ProductFields
}

type UpdateProductResponse struct{}

type DeactivateProductRequest struct {
	ID int64 `json:"id"`
}

type DeactivateProductResponse struct{}
