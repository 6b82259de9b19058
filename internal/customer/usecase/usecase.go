package usecase

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/fekuna/crpm-service/internal/customer/repository"
	"github.com/fekuna/crpm-service/internal/model"
	"github.com/fekuna/crpm-service/internal/pkg/logger"
)

type UseCase interface {
	AddCustomer(ctx context.Context, input *model.Customer) (int64, error)
	GetCustomer(ctx context.Context, id int64) (*model.Customer, error)
	GetActiveCustomers(ctx context.Context) ([]*model.Customer, error)
	UpdateCustomer(ctx context.Context, input *model.Customer) error
	DeactivateCustomer(ctx context.Context, id int64) error
}

type customerUseCase struct {
	repo   repository.Repository
	logger logger.ZapLogger
}

func NewCustomerUseCase(repo repository.Repository, logger logger.ZapLogger) UseCase {
	return &customerUseCase{repo: repo, logger: logger}
}

func (uc *customerUseCase) AddCustomer(ctx context.Context, input *model.Customer) (int64, error) {
	normalize(input)

	id, err := uc.repo.Create(ctx, input)
	if err != nil {
		if errors.Is(err, model.ErrDuplicateKey) {
			uc.logger.Info("Customer email already registered", zap.String("email", input.Email))
			return 0, err
		}
		uc.logger.Error("Failed to create customer", zap.Error(err))
		return 0, err
	}
	return id, nil
}

func (uc *customerUseCase) GetCustomer(ctx context.Context, id int64) (*model.Customer, error) {
	if id <= 0 {
		return nil, model.ErrInvalidID
	}
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, model.ErrCustomerNotFound) {
			uc.logger.Error("Failed to get customer", zap.Int64("customer_id", id), zap.Error(err))
		}
		return nil, err
	}
	return customer, nil
}

func (uc *customerUseCase) GetActiveCustomers(ctx context.Context) ([]*model.Customer, error) {
	customers, err := uc.repo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("Failed to list customers", zap.Error(err))
		return nil, err
	}
	return customers, nil
}

// UpdateCustomer overwrites the mutable fields of input.ID. A missing customer
// is not an error.
func (uc *customerUseCase) UpdateCustomer(ctx context.Context, input *model.Customer) error {
	normalize(input)

	if err := uc.repo.Update(ctx, input); err != nil {
		if errors.Is(err, model.ErrDuplicateKey) {
			return err
		}
		uc.logger.Error("Failed to update customer", zap.Int64("customer_id", input.ID), zap.Error(err))
		return err
	}
	return nil
}

func (uc *customerUseCase) DeactivateCustomer(ctx context.Context, id int64) error {
	if err := uc.repo.Deactivate(ctx, id); err != nil {
		uc.logger.Error("Failed to deactivate customer", zap.Int64("customer_id", id), zap.Error(err))
		return err
	}
	uc.logger.Info("Customer deactivated", zap.Int64("customer_id", id))
	return nil
}

func normalize(c *model.Customer) {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Email = strings.TrimSpace(c.Email)
	c.PhoneNumber = strings.TrimSpace(c.PhoneNumber)
}
