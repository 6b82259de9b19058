package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/fekuna/crpm-service/internal/model"
	"github.com/fekuna/crpm-service/internal/pkg/logger"
	"github.com/fekuna/crpm-service/internal/report/repository"
)

type UseCase interface {
	SalesReport(ctx context.Context) (*model.SalesReport, error)
	TopCustomers(ctx context.Context, limit int) ([]*model.TopCustomer, error)
	ProductPerformance(ctx context.Context) ([]*model.ProductPerformance, error)
}

type reportUseCase struct {
	repo   repository.Repository
	logger logger.ZapLogger
}

func NewReportUseCase(repo repository.Repository, logger logger.ZapLogger) UseCase {
	return &reportUseCase{repo: repo, logger: logger}
}

func (uc *reportUseCase) SalesReport(ctx context.Context) (*model.SalesReport, error) {
	report, err := uc.repo.SalesReport(ctx)
	if err != nil {
		uc.logger.Error("Failed to build sales report", zap.Error(err))
		return nil, err
	}
	return report, nil
}

// TopCustomers ranks customers by spend. limit <= 0 means the default of 10.
func (uc *reportUseCase) TopCustomers(ctx context.Context, limit int) ([]*model.TopCustomer, error) {
	if limit <= 0 {
		limit = model.DefaultTopCustomersLimit
	}
	customers, err := uc.repo.TopCustomers(ctx, limit)
	if err != nil {
		uc.logger.Error("Failed to build top customers report", zap.Int("limit", limit), zap.Error(err))
		return nil, err
	}
	return customers, nil
}

func (uc *reportUseCase) ProductPerformance(ctx context.Context) ([]*model.ProductPerformance, error) {
	rows, err := uc.repo.ProductPerformance(ctx)
	if err != nil {
		uc.logger.Error("Failed to build product performance report", zap.Error(err))
		return nil, err
	}
	return rows, nil
}
