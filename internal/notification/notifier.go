package notification

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/config"
	"storefront/internal/domain"
	"storefront/internal/mail"

	"go.uber.org/zap"
)

type OrderReader interface {
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
}

type OrderItemReader interface {
	ListByOrderID(ctx context.Context, orderID uint) ([]domain.OrderItem, error)
}

type OrderServiceItemReader interface {
	ListByOrderID(ctx context.Context, orderID uint) ([]domain.OrderServiceItem, error)
}

type ProductReader interface {
	FindByID(ctx context.Context, id uint) (*domain.Product, error)
}

type ServiceReader interface {
	FindByID(ctx context.Context, id uint) (*domain.Service, error)
}

type Mailer interface {
	SendEmail(ctx context.Context, email mail.Email) error
}

// Notifier sends the post-commit order emails. Every failure in here is
// logged and dropped: the order has already been created and responded to,
// and notification success must never influence that outcome.
type Notifier struct {
	orders       OrderReader
	items        OrderItemReader
	serviceItems OrderServiceItemReader
	products     ProductReader
	services     ServiceReader
	mailer       Mailer
	adminEmail   string
	timeout      time.Duration
	logger       *zap.Logger
}

func NewNotifier(
	orders OrderReader,
	items OrderItemReader,
	serviceItems OrderServiceItemReader,
	products ProductReader,
	services ServiceReader,
	mailer Mailer,
	cfg config.MailConfig,
	logger *zap.Logger,
) *Notifier {
	return &Notifier{
		orders:       orders,
		items:        items,
		serviceItems: serviceItems,
		products:     products,
		services:     services,
		mailer:       mailer,
		adminEmail:   cfg.AdminEmail,
		timeout:      cfg.Timeout,
		logger:       logger,
	}
}

// NotifyOrderCreated is invoked in a detached goroutine after the checkout
// transaction has committed. It carries its own context; the request that
// created the order is long gone.
func (n *Notifier) NotifyOrderCreated(orderID uint, orderNumber string) {
	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()

	logger := n.logger.With(zap.Uint("orderId", orderID), zap.String("orderNumber", orderNumber))

	data, err := n.buildEmailData(ctx, orderID)
	if err != nil {
		logger.Warn("order notification skipped", zap.Error(err))
		return
	}

	adminBody, err := RenderAdminEmail(*data)
	if err != nil {
		logger.Warn("rendering admin email failed", zap.Error(err))
	} else {
		err = n.mailer.SendEmail(ctx, mail.Email{
			To:          n.adminEmail,
			Subject:     fmt.Sprintf("New order %s", orderNumber),
			HTMLContent: adminBody,
		})
		if err != nil {
			logger.Warn("admin notification failed", zap.Error(err))
		} else {
			logger.Info("admin notification sent")
		}
	}

	customerBody, err := RenderCustomerEmail(*data)
	if err != nil {
		logger.Warn("rendering customer email failed", zap.Error(err))
		return
	}

	err = n.mailer.SendEmail(ctx, mail.Email{
		To:          data.CustomerEmail,
		ToName:      data.CustomerName,
		Subject:     fmt.Sprintf("Your order %s is confirmed", orderNumber),
		HTMLContent: customerBody,
	})
	if err != nil {
		logger.Warn("customer confirmation failed", zap.Error(err))
		return
	}
	logger.Info("customer confirmation sent")
}

func (n *Notifier) buildEmailData(ctx context.Context, orderID uint) (*EmailData, error) {
	order, err := n.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("loading order: %w", err)
	}

	items, err := n.items.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("loading order items: %w", err)
	}

	serviceItems, err := n.serviceItems.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("loading order service items: %w", err)
	}

	var customerName string
	if order.CustomerName != nil {
		customerName = *order.CustomerName
	}

	data := &EmailData{
		OrderNumber:    order.OrderNumber,
		CustomerName:   customerName,
		CustomerEmail:  order.CustomerEmail,
		Subtotal:       order.Subtotal,
		TaxAmount:      order.TaxAmount,
		ShippingAmount: order.ShippingAmount,
		DiscountAmount: order.DiscountAmount,
		TotalAmount:    order.TotalAmount,
	}

	for _, item := range items {
		line := EmailLine{
			Name:      item.ProductName,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.TotalPrice,
		}

		// Display enrichment only. The snapshot already holds the name and
		// prices; a lookup failure just means no slug or image.
		if product, err := n.products.FindByID(ctx, item.ProductID); err == nil {
			line.Name = product.Name
			line.Slug = product.Slug
			if product.ImageURL != nil {
				line.ImageURL = *product.ImageURL
			}
		} else {
			n.logger.Debug("product enrichment failed, using snapshot values",
				zap.Uint("productId", item.ProductID), zap.Error(err))
		}

		data.Lines = append(data.Lines, line)
	}

	for _, item := range serviceItems {
		line := EmailLine{
			Name:      item.ServiceName,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.TotalPrice,
		}

		if svc, err := n.services.FindByID(ctx, item.ServiceID); err == nil {
			line.Name = svc.Name
			line.Slug = svc.Slug
			if svc.ImageURL != nil {
				line.ImageURL = *svc.ImageURL
			}
		} else {
			n.logger.Debug("service enrichment failed, using snapshot values",
				zap.Uint("serviceId", item.ServiceID), zap.Error(err))
		}

		data.Lines = append(data.Lines, line)
	}

	return data, nil
}
