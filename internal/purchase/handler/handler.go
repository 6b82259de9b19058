package handler

import (
	"context"

	"google.golang.org/grpc"

	"github.com/fekuna/crpm-service/internal/model"
	"github.com/fekuna/crpm-service/internal/pkg/logger"
	"github.com/fekuna/crpm-service/internal/pkg/rpc"
	"github.com/fekuna/crpm-service/internal/purchase/usecase"
)

const ServiceName = "crpm.purchase.v1.PurchaseService"

type RecordPurchaseRequest struct {
	CustomerID int64 `json:"customer_id"`
	ProductID  int64 `json:"product_id"`
	Quantity   int64 `json:"quantity"`
}

type RecordPurchaseResponse struct {
	ID int64 `json:"id"`
}

type GetPurchaseHistoryRequest struct {
	CustomerID int64 `json:"customer_id"`
}

type GetPurchaseHistoryResponse struct {
	Purchases []*model.PurchaseHistoryEntry `json:"purchases"`
}

type PurchaseServiceServer interface {
	RecordPurchase(ctx context.Context, req *RecordPurchaseRequest) (*RecordPurchaseResponse, error)
	GetPurchaseHistory(ctx context.Context, req *GetPurchaseHistoryRequest) (*GetPurchaseHistoryResponse, error)
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PurchaseServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.Unary(ServiceName, "RecordPurchase", PurchaseServiceServer.RecordPurchase),
		rpc.Unary(ServiceName, "GetPurchaseHistory", PurchaseServiceServer.GetPurchaseHistory),
	},
}

func RegisterPurchaseServiceServer(s grpc.ServiceRegistrar, srv PurchaseServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

type PurchaseHandler struct {
	useCase usecase.UseCase
	logger  logger.ZapLogger
}

func NewPurchaseHandler(useCase usecase.UseCase, logger logger.ZapLogger) *PurchaseHandler {
	return &PurchaseHandler{useCase: useCase, logger: logger}
}

func (h *PurchaseHandler) RecordPurchase(ctx context.Context, req *RecordPurchaseRequest) (*RecordPurchaseResponse, error) {
	id, err := h.useCase.RecordPurchase(ctx, req.CustomerID, req.ProductID, req.Quantity)
	if err != nil {
		return nil, err
	}
	return &RecordPurchaseResponse{ID: id}, nil
}

func (h *PurchaseHandler) GetPurchaseHistory(ctx context.Context, req *GetPurchaseHistoryRequest) (*GetPurchaseHistoryResponse, error) {
	history, err := h.useCase.GetPurchaseHistory(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	return &GetPurchaseHistoryResponse{Purchases: history}, nil
}
