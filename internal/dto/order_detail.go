package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderDetailResponse struct {
	ID             uint                `json:"id"`
	OrderNumber    string              `json:"order_number"`
	Status         string              `json:"status"`
	CustomerEmail  string              `json:"customer_email"`
	CustomerPhone  *string             `json:"customer_phone,omitempty"`
	CustomerName   *string             `json:"customer_name,omitempty"`
	PaymentMethod  *string             `json:"payment_method,omitempty"`
	ShippingMethod *string             `json:"shipping_method,omitempty"`
	Notes          *string             `json:"notes,omitempty"`
	Subtotal       decimal.Decimal     `json:"subtotal"`
	TaxAmount      decimal.Decimal     `json:"tax_amount"`
	ShippingAmount decimal.Decimal     `json:"shipping_amount"`
	DiscountAmount decimal.Decimal     `json:"discount_amount"`
	TotalAmount    decimal.Decimal     `json:"total_amount"`
	Items          []OrderItemDetail   `json:"items"`
	ServiceItems   []ServiceItemDetail `json:"service_items"`
	CreatedAt      time.Time           `json:"created_at"`
}

type OrderItemDetail struct {
	ProductID        uint            `json:"product_id"`
	ProductVariantID *uint           `json:"product_variant_id,omitempty"`
	ProductName      string          `json:"product_name"`
	ProductSKU       *string         `json:"product_sku,omitempty"`
	Quantity         int             `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	TotalPrice       decimal.Decimal `json:"total_price"`
}

type ServiceItemDetail struct {
	ServiceID         uint            `json:"service_id"`
	ServiceScheduleID *uint           `json:"service_schedule_id,omitempty"`
	ServiceName       string          `json:"service_name"`
	Quantity          int             `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	TotalPrice        decimal.Decimal `json:"total_price"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type UpdateOrderStatusResponse struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}
