package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID        uint
	Name      string
	Slug      string
	SKU       *string
	Price     decimal.Decimal
	ImageURL  *string
	IsActive  bool
	Variants  []ProductVariant
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ProductVariant struct {
	ID        uint
	ProductID uint
	Name      string
	Price     decimal.Decimal
}

// VariantPrice returns the price of the given variant, falling back to the
// product's base price when the variant is unknown.
func (p Product) VariantPrice(variantID uint) decimal.Decimal {
	for _, v := range p.Variants {
		if v.ID == variantID {
			return v.Price
		}
	}
	return p.Price
}
