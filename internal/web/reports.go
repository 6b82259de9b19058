package web

import (
	"net/http"
	"strconv"

	reporthandler "github.com/fekuna/crpm-service/internal/report/handler"
)

func (rt *router) salesReport(w http.ResponseWriter, r *http.Request) error {
	resp, err := rt.svc.Reports.SalesReport(r.Context(), &reporthandler.SalesReportRequest{})
	if err != nil {
		return err
	}
	return writeSuccessJSON(w, http.StatusOK, "sales report", resp.Report)
}

// topCustomers reads ?limit=N. A missing or malformed limit falls back to the
// report default.
func (rt *router) topCustomers(w http.ResponseWriter, r *http.Request) error {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		limit = 0
	}

	resp, err := rt.svc.Reports.TopCustomers(r.Context(), &reporthandler.TopCustomersRequest{Limit: limit})
	if err != nil {
		return err
	}
	return writeSuccessJSON(w, http.StatusOK, "top customers", resp.Customers)
}

func (rt *router) productPerformance(w http.ResponseWriter, r *http.Request) error {
	resp, err := rt.svc.Reports.ProductPerformance(r.Context(), &reporthandler.ProductPerformanceRequest{})
	if err != nil {
		return err
	}
	return writeSuccessJSON(w, http.StatusOK, "product performance", resp.Products)
}
