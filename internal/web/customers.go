package web

import (
	"net/http"

	customerhandler "github.com/fekuna/crpm-service/internal/customer/handler"
	purchasehandler "github.com/fekuna/crpm-service/internal/purchase/handler"
)

func (rt *router) createCustomer(w http.ResponseWriter, r *http.Request) error {
	var req customerhandler.CreateCustomerRequest
	if err := parseJSON(r, &req); err != nil {
		return err
	}

	resp, err := rt.svc.Customers.CreateCustomer(r.Context(), &req)
	if err != nil {
		return err
	}
	return writeSuccessJSON(w, http.StatusCreated, "customer created", resp)
}

func (rt *router) listActiveCustomers(w http.ResponseWriter, r *http.Request) error {
	resp, err := rt.svc.Customers.ListActiveCustomers(r.Context(), &customerhandler.ListActiveCustomersRequest{})
	if err != nil {
		return err
	}
	return writeSuccessJSON(w, http.StatusOK, "active customers retrieved", resp.Customers)
}

func (rt *router) getCustomer(w http.ResponseWriter, r *http.Request) error {
	id, err := idParam(r)
	if err != nil {
		return err
	}

	resp, err := rt.svc.Customers.GetCustomer(r.Context(), &customerhandler.GetCustomerRequest{ID: id})
	if err != nil {
		return err
	}
	return writeSuccessJSON(w, http.StatusOK, "customer found", resp.Customer)
}

func (rt *router) updateCustomer(w http.ResponseWriter, r *http.Request) error {
	id, err := idParam(r)
	if err != nil {
		return err
	}

	req := customerhandler.UpdateCustomerRequest{ID: id}
	if err := parseJSON(r, &req.CustomerFields); err != nil {
		return err
	}

	if _, err := rt.svc.Customers.UpdateCustomer(r.Context(), &req); err != nil {
		return err
	}
	return writeSuccessJSON(w, http.StatusOK, "customer updated", nil)
}

func (rt *router) deactivateCustomer(w http.ResponseWriter, r *http.Request) error {
	id, err := idParam(r)
	if err != nil {
		return err
	}

	if _, err := rt.svc.Customers.DeactivateCustomer(r.Context(), &customerhandler.DeactivateCustomerRequest{ID: id}); err != nil {
		return err
	}
	return writeSuccessJSON(w, http.StatusOK, "customer deactivated", nil)
}

func (rt *router) purchaseHistory(w http.ResponseWriter, r *http.Request) error {
	id, err := idParam(r)
	if err != nil {
		return err
	}

	resp, err := rt.svc.Purchases.GetPurchaseHistory(r.Context(), &purchasehandler.GetPurchaseHistoryRequest{CustomerID: id})
	if err != nil {
		return err
	}
	return writeSuccessJSON(w, http.StatusOK, "purchase history retrieved", resp.Purchases)
}
