package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/fekuna/crpm-service/internal/model"
	"github.com/fekuna/crpm-service/internal/pkg/logger"
	"github.com/fekuna/crpm-service/internal/purchase/repository"
)

type UseCase interface {
	RecordPurchase(ctx context.Context, customerID, productID, quantity int64) (int64, error)
	GetPurchaseHistory(ctx context.Context, customerID int64) ([]*model.PurchaseHistoryEntry, error)
}

type purchaseUseCase struct {
	repo   repository.Repository
	logger logger.ZapLogger
}

func NewPurchaseUseCase(repo repository.Repository, logger logger.ZapLogger) UseCase {
	return &purchaseUseCase{repo: repo, logger: logger}
}

func (uc *purchaseUseCase) RecordPurchase(ctx context.Context, customerID, productID, quantity int64) (int64, error) {
	if quantity <= 0 {
		return 0, model.ErrInvalidQuantity
	}

	p := &model.Purchase{CustomerID: customerID, ProductID: productID, Quantity: quantity}
	id, err := uc.repo.Record(ctx, p)
	if err != nil {
		uc.logger.Error("Failed to record purchase",
			zap.Int64("customer_id", customerID),
			zap.Int64("product_id", productID),
			zap.Int64("quantity", quantity),
			zap.Error(err),
		)
		return 0, err
	}

	uc.logger.Info("Purchase recorded",
		zap.Int64("purchase_id", id),
		zap.Int64("customer_id", customerID),
		zap.Int64("product_id", productID),
		zap.Int64("quantity", quantity),
	)
	return id, nil
}

func (uc *purchaseUseCase) GetPurchaseHistory(ctx context.Context, customerID int64) ([]*model.PurchaseHistoryEntry, error) {
	history, err := uc.repo.HistoryByCustomer(ctx, customerID)
	if err != nil {
		uc.logger.Error("Failed to get purchase history", zap.Int64("customer_id", customerID), zap.Error(err))
		return nil, err
	}
	return history, nil
}
