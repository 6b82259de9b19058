package handler

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fekuna/crpm-service/internal/middleware"
	"github.com/fekuna/crpm-service/internal/model"
	"github.com/fekuna/crpm-service/internal/pkg/logger"
	"github.com/fekuna/crpm-service/internal/pkg/rpc"
	"github.com/fekuna/crpm-service/internal/pkg/rpc/rpctest"
)

type stubUseCase struct {
	limit int
	err   error
}

func (s *stubUseCase) SalesReport(context.Context) (*model.SalesReport, error) {
	return &model.SalesReport{TotalRevenue: decimal.RequireFromString("35.00"), TotalSales: 2}, s.err
}

func (s *stubUseCase) TopCustomers(_ context.Context, limit int) ([]*model.TopCustomer, error) {
	s.limit = limit
	return []*model.TopCustomer{{CustomerID: 1, FirstName: "Ada", TotalSpent: decimal.NewFromInt(35)}}, s.err
}

func (s *stubUseCase) ProductPerformance(context.Context) ([]*model.ProductPerformance, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []*model.ProductPerformance{{ProductID: 1, Name: "Chai", TotalSold: 5}}, nil
}

func dial(t *testing.T, uc *stubUseCase) func(method string, req, resp any) error {
	log := logger.NewNop()
	conn := rpctest.Dial(t,
		func(s *grpc.Server) { RegisterReportServiceServer(s, NewReportHandler(uc, log)) },
		grpc.UnaryInterceptor(middleware.NewContextInterceptor(log).Unary()),
	)
	return func(method string, req, resp any) error {
		return rpc.Invoke(context.Background(), conn, ServiceName, method, req, resp)
	}
}

func TestReportService(t *testing.T) {
	uc := &stubUseCase{}
	call := dial(t, uc)

	var sales SalesReportResponse
	require.NoError(t, call("SalesReport", &SalesReportRequest{}, &sales))
	assert.True(t, decimal.NewFromInt(35).Equal(sales.Report.TotalRevenue))
	assert.Equal(t, int64(2), sales.Report.TotalSales)

	var top TopCustomersResponse
	require.NoError(t, call("TopCustomers", &TopCustomersRequest{Limit: 4}, &top))
	assert.Equal(t, 4, uc.limit)
	require.Len(t, top.Customers, 1)

	var perf ProductPerformanceResponse
	require.NoError(t, call("ProductPerformance", &ProductPerformanceRequest{}, &perf))
	assert.Equal(t, int64(5), perf.Products[0].TotalSold)
}

func TestReportService_StoreError(t *testing.T) {
	call := dial(t, &stubUseCase{err: errors.New("server has gone away")})

	err := call("ProductPerformance", &ProductPerformanceRequest{}, &ProductPerformanceResponse{})
	assert.Equal(t, codes.Internal, status.Code(err))
}
