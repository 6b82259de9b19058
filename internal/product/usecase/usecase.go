package usecase

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/fekuna/crpm-service/internal/model"
	"github.com/fekuna/crpm-service/internal/pkg/logger"
	"github.com/fekuna/crpm-service/internal/product/repository"
)

type UseCase interface {
	AddProduct(ctx context.Context, input *model.Product) (int64, error)
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	GetAllProducts(ctx context.Context) ([]*model.Product, error)
	UpdateProduct(ctx context.Context, input *model.Product) error
	DeactivateProduct(ctx context.Context, id int64) error
}

type productUseCase struct {
	repo   repository.Repository
	logger logger.ZapLogger
}

func NewProductUseCase(repo repository.Repository, logger logger.ZapLogger) UseCase {
	return &productUseCase{repo: repo, logger: logger}
}

func (uc *productUseCase) AddProduct(ctx context.Context, input *model.Product) (int64, error) {
	input.Name = strings.TrimSpace(input.Name)

	id, err := uc.repo.Create(ctx, input)
	if err != nil {
		uc.logger.Error("Failed to create product", zap.Error(err))
		return 0, err
	}
	return id, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	if id <= 0 {
		return nil, model.ErrInvalidID
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, model.ErrProductNotFound) {
			uc.logger.Error("Failed to get product", zap.Int64("product_id", id), zap.Error(err))
		}
		return nil, err
	}
	return product, nil
}

func (uc *productUseCase) GetAllProducts(ctx context.Context) ([]*model.Product, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list products", zap.Error(err))
		return nil, err
	}
	return products, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *model.Product) error {
	input.Name = strings.TrimSpace(input.Name)

	if err := uc.repo.Update(ctx, input); err != nil {
		uc.logger.Error("Failed to update product", zap.Int64("product_id", input.ID), zap.Error(err))
		return err
	}
	return nil
}

// DeactivateProduct marks the product discontinued.
func (uc *productUseCase) DeactivateProduct(ctx context.Context, id int64) error {
	if err := uc.repo.Discontinue(ctx, id); err != nil {
		uc.logger.Error("Failed to discontinue product", zap.Int64("product_id", id), zap.Error(err))
		return err
	}
	uc.logger.Info("Product discontinued", zap.Int64("product_id", id))
	return nil
}
