package handler

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/fekuna/crpm-service/internal/customer/usecase"
	"github.com/fekuna/crpm-service/internal/middleware"
	"github.com/fekuna/crpm-service/internal/pkg/logger"
	"github.com/fekuna/crpm-service/internal/pkg/rpc"
)

const ServiceName = "crpm.customer.v1.CustomerService"

type CustomerServiceServer interface {
	CreateCustomer(ctx context.Context, req *CreateCustomerRequest) (*CreateCustomerResponse, error)
	GetCustomer(ctx context.Context, req *GetCustomerRequest) (*GetCustomerResponse, error)
	ListActiveCustomers(ctx context.Context, req *ListActiveCustomersRequest) (*ListActiveCustomersResponse, error)
	UpdateCustomer(ctx context.Context, req *UpdateCustomerRequest) (*UpdateCustomerResponse, error)
	DeactivateCustomer(ctx context.Context, req *DeactivateCustomerRequest) (*DeactivateCustomerResponse, error)
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CustomerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.Unary(ServiceName, "CreateCustomer", CustomerServiceServer.CreateCustomer),
		rpc.Unary(ServiceName, "GetCustomer", CustomerServiceServer.GetCustomer),
		rpc.Unary(ServiceName, "ListActiveCustomers", CustomerServiceServer.ListActiveCustomers),
		rpc.Unary(ServiceName, "UpdateCustomer", CustomerServiceServer.UpdateCustomer),
		rpc.Unary(ServiceName, "DeactivateCustomer", CustomerServiceServer.DeactivateCustomer),
	},
}

func RegisterCustomerServiceServer(s grpc.ServiceRegistrar, srv CustomerServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

type CustomerHandler struct {
	useCase usecase.UseCase
	logger  logger.ZapLogger
}

func NewCustomerHandler(useCase usecase.UseCase, logger logger.ZapLogger) *CustomerHandler {
	return &CustomerHandler{
		useCase: useCase,
		logger:  logger,
	}
}

func (h *CustomerHandler) CreateCustomer(ctx context.Context, req *CreateCustomerRequest) (*CreateCustomerResponse, error) {
	id, err := h.useCase.AddCustomer(ctx, req.toModel(0))
	if err != nil {
		return nil, err
	}

	h.logger.Info("Customer created",
		zap.Int64("customer_id", id),
		zap.String("request_id", middleware.RequestID(ctx)),
	)
	return &CreateCustomerResponse{ID: id}, nil
}

func (h *CustomerHandler) GetCustomer(ctx context.Context, req *GetCustomerRequest) (*GetCustomerResponse, error) {
	c, err := h.useCase.GetCustomer(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return &GetCustomerResponse{Customer: c}, nil
}

func (h *CustomerHandler) ListActiveCustomers(ctx context.Context, _ *ListActiveCustomersRequest) (*ListActiveCustomersResponse, error) {
	customers, err := h.useCase.GetActiveCustomers(ctx)
	if err != nil {
		return nil, err
	}
	return &ListActiveCustomersResponse{Customers: customers}, nil
}

func (h *CustomerHandler) UpdateCustomer(ctx context.Context, req *UpdateCustomerRequest) (*UpdateCustomerResponse, error) {
	if err := h.useCase.UpdateCustomer(ctx, req.toModel(req.ID)); err != nil {
		return nil, err
	}
	return &UpdateCustomerResponse{}, nil
}

func (h *CustomerHandler) DeactivateCustomer(ctx context.Context, req *DeactivateCustomerRequest) (*DeactivateCustomerResponse, error) {
	if err := h.useCase.DeactivateCustomer(ctx, req.ID); err != nil {
		return nil, err
	}
	return &DeactivateCustomerResponse{}, nil
}
