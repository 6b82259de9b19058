package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	customerhandler "github.com/fekuna/crpm-service/internal/customer/handler"
	customerrepo "github.com/fekuna/crpm-service/internal/customer/repository"
	customeruc "github.com/fekuna/crpm-service/internal/customer/usecase"
	"github.com/fekuna/crpm-service/internal/middleware"
	"github.com/fekuna/crpm-service/internal/model"
	"github.com/fekuna/crpm-service/internal/pkg/clock"
	"github.com/fekuna/crpm-service/internal/pkg/database/dbtest"
	"github.com/fekuna/crpm-service/internal/pkg/logger"
	producthandler "github.com/fekuna/crpm-service/internal/product/handler"
	productrepo "github.com/fekuna/crpm-service/internal/product/repository"
	productuc "github.com/fekuna/crpm-service/internal/product/usecase"
	purchasehandler "github.com/fekuna/crpm-service/internal/purchase/handler"
	purchaserepo "github.com/fekuna/crpm-service/internal/purchase/repository"
	purchaseuc "github.com/fekuna/crpm-service/internal/purchase/usecase"
	reporthandler "github.com/fekuna/crpm-service/internal/report/handler"
	reportrepo "github.com/fekuna/crpm-service/internal/report/repository"
	reportuc "github.com/fekuna/crpm-service/internal/report/usecase"
)

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	RequestID string          `json:"request_id"`
	Data      json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	db := dbtest.NewSQLite(t)
	clk := clock.NewMockClock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	log := logger.NewNop()

	svc := &Services{
		Customers: customerhandler.NewCustomerHandler(customeruc.NewCustomerUseCase(customerrepo.NewSQLRepository(db, clk), log), log),
		Products:  producthandler.NewProductHandler(productuc.NewProductUseCase(productrepo.NewSQLRepository(db, clk), log), log),
		Purchases: purchasehandler.NewPurchaseHandler(purchaseuc.NewPurchaseUseCase(purchaserepo.NewSQLRepository(db, clk), log), log),
		Reports:   reporthandler.NewReportHandler(reportuc.NewReportUseCase(reportrepo.NewSQLRepository(db), log), log),
	}
	return NewRouter(svc, log)
}

func do(t *testing.T, h http.Handler, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func createID(t *testing.T, env envelope) int64 {
	t.Helper()
	var out struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out.ID
}

func TestHealth(t *testing.T) {
	h := newTestRouter(t)
	rec, _ := do(t, h, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestRequestIDIsEchoed(t *testing.T) {
	h := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/999", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get(middleware.RequestIDHeader))
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "req-42", env.RequestID)
}

func TestCustomerLifecycle(t *testing.T) {
	h := newTestRouter(t)
	fields := customerhandler.CustomerFields{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}

	rec, env := do(t, h, http.MethodPost, "/api/v1/customers", fields)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := createID(t, env)
	assert.Positive(t, id)

	rec, _ = do(t, h, http.MethodPost, "/api/v1/customers/", fields)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, env = do(t, h, http.MethodGet, "/api/v1/customers", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var active []*model.Customer
	require.NoError(t, json.Unmarshal(env.Data, &active))
	require.Len(t, active, 1)
	assert.Equal(t, "ada@example.com", active[0].Email)

	fields.City = "London"
	rec, _ = do(t, h, http.MethodPut, "/api/v1/customers/1", fields)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = do(t, h, http.MethodGet, "/api/v1/customers/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got model.Customer
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "London", got.City)

	rec, _ = do(t, h, http.MethodDelete, "/api/v1/customers/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	_, env = do(t, h, http.MethodGet, "/api/v1/customers", nil)
	active = nil
	require.NoError(t, json.Unmarshal(env.Data, &active))
	assert.Empty(t, active)
}

func TestCustomerErrors(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{"unknown customer", http.MethodGet, "/api/v1/customers/404", nil, http.StatusNotFound},
		{"non numeric id", http.MethodGet, "/api/v1/customers/abc", nil, http.StatusBadRequest},
		{"zero id", http.MethodDelete, "/api/v1/customers/0", nil, http.StatusBadRequest},
		{"malformed body", http.MethodPost, "/api/v1/customers", "not an object", http.StatusBadRequest},
		{"unknown field", http.MethodPost, "/api/v1/customers", map[string]string{"nickname": "x"}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(t, h, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, rec.Code)
			assert.False(t, env.Success)
		})
	}
}

func TestPurchasesAndReports(t *testing.T) {
	h := newTestRouter(t)

	_, env := do(t, h, http.MethodPost, "/api/v1/customers", customerhandler.CustomerFields{FirstName: "Ada", Email: "ada@example.com"})
	customerID := createID(t, env)

	_, env = do(t, h, http.MethodPost, "/api/v1/products", producthandler.ProductFields{
		Name:         "Widget",
		UnitPrice:    decimal.RequireFromString("10.00"),
		UnitsInStock: 10,
	})
	productID := createID(t, env)

	_, env = do(t, h, http.MethodPost, "/api/v1/products", producthandler.ProductFields{
		Name:         "Gadget",
		UnitPrice:    decimal.RequireFromString("2.50"),
		UnitsInStock: 5,
	})
	gadgetID := createID(t, env)

	rec, _ := do(t, h, http.MethodPost, "/api/v1/purchases", purchasehandler.RecordPurchaseRequest{CustomerID: customerID, ProductID: productID, Quantity: 3})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec, _ = do(t, h, http.MethodPost, "/api/v1/purchases", purchasehandler.RecordPurchaseRequest{CustomerID: customerID, ProductID: gadgetID, Quantity: 2})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, _ = do(t, h, http.MethodPost, "/api/v1/purchases", purchasehandler.RecordPurchaseRequest{CustomerID: customerID, ProductID: productID, Quantity: 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env = do(t, h, http.MethodGet, "/api/v1/products/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var widget model.Product
	require.NoError(t, json.Unmarshal(env.Data, &widget))
	assert.Equal(t, int64(7), widget.UnitsInStock)

	rec, env = do(t, h, http.MethodGet, "/api/v1/customers/1/purchases", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var history []*model.PurchaseHistoryEntry
	require.NoError(t, json.Unmarshal(env.Data, &history))
	assert.Len(t, history, 2)

	rec, env = do(t, h, http.MethodGet, "/api/v1/reports/sales", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var sales model.SalesReport
	require.NoError(t, json.Unmarshal(env.Data, &sales))
	assert.True(t, decimal.RequireFromString("35.00").Equal(sales.TotalRevenue), sales.TotalRevenue.String())
	assert.Equal(t, int64(2), sales.TotalSales)

	rec, env = do(t, h, http.MethodGet, "/api/v1/reports/top-customers?limit=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var top []*model.TopCustomer
	require.NoError(t, json.Unmarshal(env.Data, &top))
	require.Len(t, top, 1)
	assert.Equal(t, customerID, top[0].CustomerID)

	rec, env = do(t, h, http.MethodGet, "/api/v1/reports/product-performance", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var perf []*model.ProductPerformance
	require.NoError(t, json.Unmarshal(env.Data, &perf))
	assert.Len(t, perf, 2)

	rec, _ = do(t, h, http.MethodDelete, "/api/v1/products/2", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusConflict, statusCode(model.ErrDuplicateKey))
	assert.Equal(t, http.StatusNotFound, statusCode(model.ErrProductNotFound))
	assert.Equal(t, http.StatusBadRequest, statusCode(errInvalidPayload))
	assert.Equal(t, http.StatusInternalServerError, statusCode(assert.AnError))
}
