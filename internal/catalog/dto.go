package catalog

import "github.com/shopspring/decimal"

type SearchProductsRequest struct {
	ProductIDs []uint `json:"productIds"`
}

type SearchProductsResponse struct {
	Products []ProductDTO `json:"products"`
	NotFound []uint       `json:"notFound"`
}

type ProductDTO struct {
	ID       uint            `json:"id"`
	Name     string          `json:"name"`
	Slug     string          `json:"slug"`
	SKU      *string         `json:"sku"`
	Price    decimal.Decimal `json:"price"`
	ImageURL *string         `json:"imageUrl"`
	IsActive bool            `json:"isActive"`
}
