package web

import (
	"net/http"

	producthandler "github.com/fekuna/crpm-service/internal/product/handler"
	purchasehandler "github.com/fekuna/crpm-service/internal/purchase/handler"
)

func (rt *router) createProduct(w http.ResponseWriter, r *http.Request) error {
	var req producthandler.CreateProductRequest
	if err := parseJSON(r, &req); err != nil {
		return err
	}

	resp, err := rt.svc.Products.CreateProduct(r.Context(), &req)
	if err != nil {
		return err
	}
	return writeSuccessJSON(w, http.StatusCreated, "product created", resp)
}

func (rt *router) listProducts(w http.ResponseWriter, r *http.Request) error {
	resp, err := rt.svc.Products.ListProducts(r.Context(), &producthandler.ListProductsRequest{})
	if err != nil {
		return err
	}
	return writeSuccessJSON(w, http.StatusOK, "all products retrieved", resp.Products)
}

func (rt *router) getProduct(w http.ResponseWriter, r *http.Request) error {
	id, err := idParam(r)
	if err != nil {
		return err
	}

	resp, err := rt.svc.Products.GetProduct(r.Context(), &producthandler.GetProductRequest{ID: id})
	if err != nil {
		return err
	}
	return writeSuccessJSON(w, http.StatusOK, "product found", resp.Product)
}

func (rt *router) updateProduct(w http.ResponseWriter, r *http.Request) error {
	id, err := idParam(r)
	if err != nil {
		return err
	}

	req := producthandler.UpdateProductRequest{ID: id}
	if err := parseJSON(r, &req.ProductFields); err != nil {
		return err
	}

	if _, err := rt.svc.Products.UpdateProduct(r.Context(), &req); err != nil {
		return err
	}
	return writeSuccessJSON(w, http.StatusOK, "product updated", nil)
}

func (rt *router) deactivateProduct(w http.ResponseWriter, r *http.Request) error {
	id, err := idParam(r)
	if err != nil {
		return err
	}

	if _, err := rt.svc.Products.DeactivateProduct(r.Context(), &producthandler.DeactivateProductRequest{ID: id}); err != nil {
		return err
	}
	return writeSuccessJSON(w, http.StatusOK, "product discontinued", nil)
}

func (rt *router) recordPurchase(w http.ResponseWriter, r *http.Request) error {
	var req purchasehandler.RecordPurchaseRequest
	if err := parseJSON(r, &req); err != nil {
		return err
	}

	resp, err := rt.svc.Purchases.RecordPurchase(r.Context(), &req)
	if err != nil {
		return err
	}
	return writeSuccessJSON(w, http.StatusCreated, "purchase recorded", resp)
}
