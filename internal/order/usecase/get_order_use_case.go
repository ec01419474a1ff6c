package usecase

import (
	"context"

	"storefront/internal/domain"
	"storefront/internal/dto"
)

type OrderReader interface {
	FindByNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
}

type OrderItemReader interface {
	ListByOrderID(ctx context.Context, orderID uint) ([]domain.OrderItem, error)
}

type OrderServiceItemReader interface {
	ListByOrderID(ctx context.Context, orderID uint) ([]domain.OrderServiceItem, error)
}

type StatusReader interface {
	FindNameByID(ctx context.Context, id int) (string, error)
}

type GetOrderUseCase struct {
	orderRepo       OrderReader
	itemRepo        OrderItemReader
	serviceItemRepo OrderServiceItemReader
	statusRepo      StatusReader
}

func NewGetOrderUseCase(
	orderRepo OrderReader,
	itemRepo OrderItemReader,
	serviceItemRepo OrderServiceItemReader,
	statusRepo StatusReader,
) *GetOrderUseCase {
	return &GetOrderUseCase{
		orderRepo:       orderRepo,
		itemRepo:        itemRepo,
		serviceItemRepo: serviceItemRepo,
		statusRepo:      statusRepo,
	}
}

func (uc *GetOrderUseCase) GetOrderByNumber(ctx context.Context, orderNumber string) (*dto.OrderDetailResponse, error) {
	order, err := uc.orderRepo.FindByNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}

	statusName, err := uc.statusRepo.FindNameByID(ctx, order.StatusID)
	if err != nil {
		return nil, err
	}

	items, err := uc.itemRepo.ListByOrderID(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	serviceItems, err := uc.serviceItemRepo.ListByOrderID(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	resp := &dto.OrderDetailResponse{
		ID:             order.ID,
		OrderNumber:    order.OrderNumber,
		Status:         statusName,
		CustomerEmail:  order.CustomerEmail,
		CustomerPhone:  order.CustomerPhone,
		CustomerName:   order.CustomerName,
		PaymentMethod:  order.PaymentMethod,
		ShippingMethod: order.ShippingMethod,
		Notes:          order.Notes,
		Subtotal:       order.Subtotal,
		TaxAmount:      order.TaxAmount,
		ShippingAmount: order.ShippingAmount,
		DiscountAmount: order.DiscountAmount,
		TotalAmount:    order.TotalAmount,
		Items:          make([]dto.OrderItemDetail, 0, len(items)),
		ServiceItems:   make([]dto.ServiceItemDetail, 0, len(serviceItems)),
		CreatedAt:      order.CreatedAt,
	}

	for _, item := range items {
		resp.Items = append(resp.Items, dto.OrderItemDetail{
			ProductID:        item.ProductID,
			ProductVariantID: item.ProductVariantID,
			ProductName:      item.ProductName,
			ProductSKU:       item.ProductSKU,
			Quantity:         item.Quantity,
			UnitPrice:        item.UnitPrice,
			TotalPrice:       item.TotalPrice,
		})
	}

	for _, item := range serviceItems {
		resp.ServiceItems = append(resp.ServiceItems, dto.ServiceItemDetail{
			ServiceID:         item.ServiceID,
			ServiceScheduleID: item.ServiceScheduleID,
			ServiceName:       item.ServiceName,
			Quantity:          item.Quantity,
			UnitPrice:         item.UnitPrice,
			TotalPrice:        item.TotalPrice,
		})
	}

	return resp, nil
}
