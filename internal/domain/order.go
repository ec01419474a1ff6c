package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

type Order struct {
	ID                uint
	OrderNumber       string
	UserID            uint
	StatusID          int
	Subtotal          decimal.Decimal
	TaxAmount         decimal.Decimal
	ShippingAmount    decimal.Decimal
	DiscountAmount    decimal.Decimal
	TotalAmount       decimal.Decimal
	ShippingAddressID *uint
	BillingAddressID  *uint
	Notes             *string
	CustomerEmail     string
	CustomerPhone     *string
	CustomerName      *string
	PaymentMethod     *string
	ShippingMethod    *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// OrderItem is a snapshot of a purchased product at order time. Name, sku
// and prices are copied from the catalog row so the order stays accurate if
// the product later changes or disappears.
type OrderItem struct {
	ID               uint
	OrderID          uint
	ProductID        uint
	ProductVariantID *uint
	ProductName      string
	ProductSKU       *string
	Quantity         int
	UnitPrice        decimal.Decimal
	TotalPrice       decimal.Decimal
}

// OrderServiceItem is the service/class counterpart of OrderItem, optionally
// tied to a schedule slot.
type OrderServiceItem struct {
	ID                uint
	OrderID           uint
	ServiceID         uint
	ServiceScheduleID *uint
	ServiceName       string
	Quantity          int
	UnitPrice         decimal.Decimal
	TotalPrice        decimal.Decimal
}

func NewOrderItemSnapshot(orderID uint, p Product, variantID *uint, quantity int) OrderItem {
	unit := p.Price
	if variantID != nil {
		unit = p.VariantPrice(*variantID)
	}

	return OrderItem{
		OrderID:          orderID,
		ProductID:        p.ID,
		ProductVariantID: variantID,
		ProductName:      p.Name,
		ProductSKU:       p.SKU,
		Quantity:         quantity,
		UnitPrice:        unit,
		TotalPrice:       unit.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

func NewOrderServiceItemSnapshot(orderID uint, s Service, scheduleID *uint, quantity int) OrderServiceItem {
	return OrderServiceItem{
		OrderID:           orderID,
		ServiceID:         s.ID,
		ServiceScheduleID: scheduleID,
		ServiceName:       s.Name,
		Quantity:          quantity,
		UnitPrice:         s.Price,
		TotalPrice:        s.Price.Mul(decimal.NewFromInt(int64(quantity))),
	}
}
