package catalog

import (
	"context"
)

type searchUseCase struct {
	service Service
}

func NewSearchUseCase(service Service) SearchUseCase {
	return &searchUseCase{service: service}
}

func (uc *searchUseCase) SearchProducts(ctx context.Context, req SearchProductsRequest) (*SearchProductsResponse, error) {
	found, notFoundIDs, err := uc.service.GetProductsByIDs(ctx, req.ProductIDs)
	if err != nil {
		return nil, err
	}

	products := make([]ProductDTO, 0, len(found))
	for _, p := range found {
		products = append(products, ProductDTO{
			ID:       p.ID,
			Name:     p.Name,
			Slug:     p.Slug,
			SKU:      p.SKU,
			Price:    p.Price,
			ImageURL: p.ImageURL,
			IsActive: p.IsActive,
		})
	}

	if notFoundIDs == nil {
		notFoundIDs = []uint{}
	}

	return &SearchProductsResponse{
		Products: products,
		NotFound: notFoundIDs,
	}, nil
}
