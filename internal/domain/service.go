package domain

import (
	"github.com/shopspring/decimal"
)

// Service is a purchasable service or class registration. Schedule slots are
// referenced by id only; the order line carries the slot as an opaque value.
type Service struct {
	ID       uint
	Name     string
	Slug     string
	Price    decimal.Decimal
	ImageURL *string
	IsActive bool
}
