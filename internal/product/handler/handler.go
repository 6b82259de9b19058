package handler

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/fekuna/crpm-service/internal/middleware"
	"github.com/fekuna/crpm-service/internal/pkg/logger"
	"github.com/fekuna/crpm-service/internal/pkg/rpc"
	"github.com/fekuna/crpm-service/internal/product/usecase"
)

const ServiceName = "crpm.product.v1.ProductService"

type ProductServiceServer interface {
	CreateProduct(ctx context.Context, req *CreateProductRequest) (*CreateProductResponse, error)
	GetProduct(ctx context.Context, req *GetProductRequest) (*GetProductResponse, error)
	ListProducts(ctx context.Context, req *ListProductsRequest) (*ListProductsResponse, error)
	UpdateProduct(ctx context.Context, req *UpdateProductRequest) (*UpdateProductResponse, error)
	DeactivateProduct(ctx context.Context, req *DeactivateProductRequest) (*DeactivateProductResponse, error)
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ProductServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.Unary(ServiceName, "CreateProduct", ProductServiceServer.CreateProduct),
		rpc.Unary(ServiceName, "GetProduct", ProductServiceServer.GetProduct),
		rpc.Unary(ServiceName, "ListProducts", ProductServiceServer.ListProducts),
		rpc.Unary(ServiceName, "UpdateProduct", ProductServiceServer.UpdateProduct),
		rpc.Unary(ServiceName, "DeactivateProduct", ProductServiceServer.DeactivateProduct),
	},
}

func RegisterProductServiceServer(s grpc.ServiceRegistrar, srv ProductServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

type ProductHandler struct {
	useCase usecase.UseCase
	logger  logger.ZapLogger
}

func NewProductHandler(useCase usecase.UseCase, logger logger.ZapLogger) *ProductHandler {
	return &ProductHandler{useCase: useCase, logger: logger}
}

func (h *ProductHandler) CreateProduct(ctx context.Context, req *CreateProductRequest) (*CreateProductResponse, error) {
	id, err := h.useCase.AddProduct(ctx, req.toModel(0))
	if err != nil {
		return nil, err
	}
	h.logger.Info("Product created",
		zap.Int64("product_id", id),
		zap.String("request_id", middleware.RequestID(ctx)),
	)
	return &CreateProductResponse{ID: id}, nil
}

func (h *ProductHandler) GetProduct(ctx context.Context, req *GetProductRequest) (*GetProductResponse, error) {
	p, err := h.useCase.GetProduct(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return &GetProductResponse{Product: p}, nil
}

func (h *ProductHandler) ListProducts(ctx context.Context, _ *ListProductsRequest) (*ListProductsResponse, error) {
	products, err := h.useCase.GetAllProducts(ctx)
	if err != nil {
		return nil, err
	}
	return &ListProductsResponse{Products: products}, nil
}

func (h *ProductHandler) UpdateProduct(ctx context.Context, req *UpdateProductRequest) (*UpdateProductResponse, error) {
	if err := h.useCase.UpdateProduct(ctx, req.toModel(req.ID)); err != nil {
		return nil, err
	}
	return &UpdateProductResponse{}, nil
}

func (h *ProductHandler) DeactivateProduct(ctx context.Context, req *DeactivateProductRequest) (*DeactivateProductResponse, error) {
	if err := h.useCase.DeactivateProduct(ctx, req.ID); err != nil {
		return nil, err
	}
	return &DeactivateProductResponse{}, nil
}
