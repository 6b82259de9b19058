// Package web serves the CRPM operations as JSON over HTTP under /api/v1.
package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	chimiddleware "github.com/go-chi/chi/middleware"

	customerhandler "github.com/fekuna/crpm-service/internal/customer/handler"
	"github.com/fekuna/crpm-service/internal/model"
	"github.com/fekuna/crpm-service/internal/pkg/logger"
	producthandler "github.com/fekuna/crpm-service/internal/product/handler"
	purchasehandler "github.com/fekuna/crpm-service/internal/purchase/handler"
	reporthandler "github.com/fekuna/crpm-service/internal/report/handler"
)

// Services are the transport-neutral handlers the routes delegate to. The
// gRPC server registers the same values.
type Services struct {
	Customers customerhandler.CustomerServiceServer
	Products  producthandler.ProductServiceServer
	Purchases purchasehandler.PurchaseServiceServer
	Reports   reporthandler.ReportServiceServer
}

type router struct {
	svc    *Services
	logger logger.ZapLogger
}

func NewRouter(svc *Services, log logger.ZapLogger) http.Handler {
	rt := &router{svc: svc, logger: log}

	r := chi.NewRouter()
	// /customers/1/ -> /customers/1
	r.Use(chimiddleware.StripSlashes)
	r.Use(requestID)
	r.Use(accessLog(log))
	r.Use(chimiddleware.Recoverer)

	r.Mount("/api/v1", rt.v1Router())
	return r
}

func (rt *router) v1Router() *chi.Mux {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/customers", func(r chi.Router) {
		r.Post("/", rt.handle(rt.createCustomer))
		r.Get("/", rt.handle(rt.listActiveCustomers))
		r.Get("/{id}", rt.handle(rt.getCustomer))
		r.Put("/{id}", rt.handle(rt.updateCustomer))
		r.Delete("/{id}", rt.handle(rt.deactivateCustomer))
		r.Get("/{id}/purchases", rt.handle(rt.purchaseHistory))
	})

	r.Route("/products", func(r chi.Router) {
		r.Post("/", rt.handle(rt.createProduct))
		r.Get("/", rt.handle(rt.listProducts))
		r.Get("/{id}", rt.handle(rt.getProduct))
		r.Put("/{id}", rt.handle(rt.updateProduct))
		r.Delete("/{id}", rt.handle(rt.deactivateProduct))
	})

	r.Post("/purchases", rt.handle(rt.recordPurchase))

	r.Route("/reports", func(r chi.Router) {
		r.Get("/sales", rt.handle(rt.salesReport))
		r.Get("/top-customers", rt.handle(rt.topCustomers))
		r.Get("/product-performance", rt.handle(rt.productPerformance))
	})

	return r
}

func (rt *router) handle(h APIHandler) http.HandlerFunc {
	return makeHandler(rt.logger, h)
}

func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, model.ErrInvalidID
	}
	return id, nil
}
