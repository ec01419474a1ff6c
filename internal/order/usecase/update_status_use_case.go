package usecase

import (
	"context"

	"storefront/internal/dto"
	apperrors "storefront/internal/errors"

	"go.uber.org/zap"
)

type StatusNameResolver interface {
	FindIDByName(ctx context.Context, name string) (int, error)
}

type OrderStatusUpdater interface {
	UpdateStatus(ctx context.Context, id uint, statusID int) error
}

type UpdateOrderStatusUseCase struct {
	orderRepo  OrderStatusUpdater
	statusRepo StatusNameResolver
	logger     *zap.Logger
}

func NewUpdateOrderStatusUseCase(orderRepo OrderStatusUpdater, statusRepo StatusNameResolver, logger *zap.Logger) *UpdateOrderStatusUseCase {
	return &UpdateOrderStatusUseCase{
		orderRepo:  orderRepo,
		statusRepo: statusRepo,
		logger:     logger,
	}
}

func (uc *UpdateOrderStatusUseCase) UpdateStatus(ctx context.Context, orderID uint, statusName string) (*dto.UpdateOrderStatusResponse, error) {
	if statusName == "" {
		return nil, apperrors.NewValidationError("status is required", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status is required",
		})
	}

	statusID, err := uc.statusRepo.FindIDByName(ctx, statusName)
	if err != nil {
		// An unknown status name is a caller mistake here, unlike the
		// seeded "pending" lookup during checkout.
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewValidationError("unknown status: "+statusName, apperrors.ValidationDetail{
				Field:   "status",
				Message: "unknown status: " + statusName,
			})
		}
		return nil, err
	}

	if err := uc.orderRepo.UpdateStatus(ctx, orderID, statusID); err != nil {
		return nil, err
	}

	uc.logger.Info("order status updated",
		zap.Uint("orderId", orderID), zap.String("status", statusName))

	return &dto.UpdateOrderStatusResponse{
		ID:     orderID,
		Status: statusName,
	}, nil
}
