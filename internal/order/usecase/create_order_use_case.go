package usecase

import (
	"context"

	"storefront/internal/dto"
	apperrors "storefront/internal/errors"

	"go.uber.org/zap"
)

type CheckoutService interface {
	PlaceOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.CreateOrderResponse, error)
}

// Notifier runs after the order is committed. It is detached from the
// request: no context, no error return.
type Notifier interface {
	NotifyOrderCreated(orderID uint, orderNumber string)
}

type CreateOrderUseCase struct {
	checkout CheckoutService
	notifier Notifier
	logger   *zap.Logger
}

func NewCreateOrderUseCase(checkout CheckoutService, notifier Notifier, logger *zap.Logger) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		checkout: checkout,
		notifier: notifier,
		logger:   logger,
	}
}

// CreateOrder validates the request, persists the order atomically and
// spawns the notification goroutine. Notification success is independent of
// order success: the caller gets its response no matter what the notifier
// does.
func (uc *CreateOrderUseCase) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	if err := ValidateCreateOrder(req); err != nil {
		return nil, err
	}

	resp, err := uc.checkout.PlaceOrder(ctx, req)
	if err != nil {
		return nil, err
	}

	go uc.notifier.NotifyOrderCreated(resp.ID, resp.OrderNumber)

	return resp, nil
}

const createOrderValidationMessage = "Customer email, total amount, and at least one item are required"

// ValidateCreateOrder is the order request gate: customer email, total
// amount and at least one product or service item must be present. It runs
// before any side effect.
func ValidateCreateOrder(req dto.CreateOrderRequest) error {
	var details []apperrors.ValidationDetail

	if req.CustomerEmail == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "customer_email",
			Message: "customer_email is required",
		})
	}

	if req.TotalAmount == nil {
		details = append(details, apperrors.ValidationDetail{
			Field:   "total_amount",
			Message: "total_amount is required",
		})
	}

	if len(req.Items) == 0 && len(req.ServiceItems) == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "items",
			Message: "at least one item or service item is required",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError(createOrderValidationMessage, details...)
	}

	return nil
}
