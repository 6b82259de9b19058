package handler

import (
	"context"

	"google.golang.org/grpc"

	"github.com/fekuna/crpm-service/internal/model"
	"github.com/fekuna/crpm-service/internal/pkg/logger"
	"github.com/fekuna/crpm-service/internal/pkg/rpc"
	"github.com/fekuna/crpm-service/internal/report/usecase"
)

const ServiceName = "crpm.report.v1.ReportService"

type SalesReportRequest struct{}

type SalesReportResponse struct {
	Report *model.SalesReport `json:"report"`
}

type TopCustomersRequest struct {
	Limit int `json:"limit"`
}

type TopCustomersResponse struct {
	Customers []*model.TopCustomer `json:"customers"`
}

type ProductPerformanceRequest struct{}

type ProductPerformanceResponse struct {
	Products []*model.ProductPerformance `json:"products"`
}

type ReportServiceServer interface {
	SalesReport(ctx context.Context, req *SalesReportRequest) (*SalesReportResponse, error)
	TopCustomers(ctx context.Context, req *TopCustomersRequest) (*TopCustomersResponse, error)
	ProductPerformance(ctx context.Context, req *ProductPerformanceRequest) (*ProductPerformanceResponse, error)
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ReportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.Unary(ServiceName, "SalesReport", ReportServiceServer.SalesReport),
		rpc.Unary(ServiceName, "TopCustomers", ReportServiceServer.TopCustomers),
		rpc.Unary(ServiceName, "ProductPerformance", ReportServiceServer.ProductPerformance),
	},
}

func RegisterReportServiceServer(s grpc.ServiceRegistrar, srv ReportServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

type ReportHandler struct {
	useCase usecase.UseCase
	logger  logger.ZapLogger
}

func NewReportHandler(useCase usecase.UseCase, logger logger.ZapLogger) *ReportHandler {
	return &ReportHandler{useCase: useCase, logger: logger}
}

func (h *ReportHandler) SalesReport(ctx context.Context, _ *SalesReportRequest) (*SalesReportResponse, error) {
	r, err := h.useCase.SalesReport(ctx)
	if err != nil {
		return nil, err
	}
	return &SalesReportResponse{Report: r}, nil
}

func (h *ReportHandler) TopCustomers(ctx context.Context, req *TopCustomersRequest) (*TopCustomersResponse, error) {
	customers, err := h.useCase.TopCustomers(ctx, req.Limit)
	if err != nil {
		return nil, err
	}
	return &TopCustomersResponse{Customers: customers}, nil
}

func (h *ReportHandler) ProductPerformance(ctx context.Context, _ *ProductPerformanceRequest) (*ProductPerformanceResponse, error) {
	rows, err := h.useCase.ProductPerformance(ctx)
	if err != nil {
		return nil, err
	}
	return &ProductPerformanceResponse{Products: rows}, nil
}
