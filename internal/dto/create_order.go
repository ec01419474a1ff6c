package dto

import (
	"github.com/shopspring/decimal"
)

// CreateOrderRequest is the POST /api/orders body. TotalAmount is a pointer
// so a missing field can be told apart from an explicit zero. Client-supplied
// prices are deliberately absent from the item shapes: unit prices are always
// re-read from the catalog at persist time.
type CreateOrderRequest struct {
	UserID            *uint              `json:"user_id"`
	Items             []OrderItemInput   `json:"items"`
	ServiceItems      []ServiceItemInput `json:"service_items"`
	ShippingAddressID *uint              `json:"shipping_address_id"`
	BillingAddressID  *uint              `json:"billing_address_id"`
	Notes             *string            `json:"notes"`
	CustomerEmail     string             `json:"customer_email"`
	CustomerPhone     *string            `json:"customer_phone"`
	CustomerName      *string            `json:"customer_name"`
	PaymentMethod     *string            `json:"payment_method"`
	ShippingMethod    *string            `json:"shipping_method"`
	Subtotal          decimal.Decimal    `json:"subtotal"`
	TaxAmount         decimal.Decimal    `json:"tax_amount"`
	ShippingAmount    decimal.Decimal    `json:"shipping_amount"`
	DiscountAmount    decimal.Decimal    `json:"discount_amount"`
	TotalAmount       *decimal.Decimal   `json:"total_amount"`
	Address           *string            `json:"address"`
}

type OrderItemInput struct {
	ProductID uint  `json:"product_id"`
	Quantity  int   `json:"quantity"`
	VariantID *uint `json:"variant_id"`
}

type ServiceItemInput struct {
	ServiceID  uint  `json:"service_id"`
	ScheduleID *uint `json:"schedule_id"`
	Quantity   int   `json:"quantity"`
}

type CreateOrderResponse struct {
	ID          uint   `json:"id"`
	OrderNumber string `json:"order_number"`
}
