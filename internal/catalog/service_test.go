package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"storefront/internal/domain"
)

type mockRepository struct {
	findByIDsFunc func(ctx context.Context, ids []uint) ([]domain.Product, error)
}

func (m *mockRepository) FindByIDs(ctx context.Context, ids []uint) ([]domain.Product, error) {
	return m.findByIDsFunc(ctx, ids)
}

func TestGetProductsByIDs(t *testing.T) {
	repo := &mockRepository{findByIDsFunc: func(ctx context.Context, ids []uint) ([]domain.Product, error) {
		return []domain.Product{
			{ID: 1, Name: "Ceramic Mug", Price: decimal.NewFromFloat(25.00)},
			{ID: 3, Name: "Glazed Bowl", Price: decimal.NewFromFloat(40.00)},
		}, nil
	}}
	svc := NewService(repo)

	found, notFound, err := svc.GetProductsByIDs(context.Background(), []uint{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 2 {
		t.Errorf("expected 2 products, got %d", len(found))
	}
	if len(notFound) != 1 || notFound[0] != 2 {
		t.Errorf("expected notFound [2], got %v", notFound)
	}
}

func TestGetProductsByIDs_AllFound(t *testing.T) {
	repo := &mockRepository{findByIDsFunc: func(ctx context.Context, ids []uint) ([]domain.Product, error) {
		return []domain.Product{{ID: 1, Name: "Ceramic Mug"}}, nil
	}}
	svc := NewService(repo)

	found, notFound, err := svc.GetProductsByIDs(context.Background(), []uint{1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 1 || len(notFound) != 0 {
		t.Errorf("expected all found, got found=%d notFound=%v", len(found), notFound)
	}
}

func TestGetProductsByIDs_RepositoryError(t *testing.T) {
	repo := &mockRepository{findByIDsFunc: func(ctx context.Context, ids []uint) ([]domain.Product, error) {
		return nil, errors.New("connection refused")
	}}
	svc := NewService(repo)

	_, _, err := svc.GetProductsByIDs(context.Background(), []uint{1})
	if err == nil {
		t.Fatal("expected error")
	}
}

type mockService struct {
	getFunc func(ctx context.Context, ids []uint) ([]domain.Product, []uint, error)
}

func (m *mockService) GetProductsByIDs(ctx context.Context, ids []uint) ([]domain.Product, []uint, error) {
	return m.getFunc(ctx, ids)
}

func TestSearchProducts_MapsToDTO(t *testing.T) {
	sku := "MUG-001"
	svc := &mockService{getFunc: func(ctx context.Context, ids []uint) ([]domain.Product, []uint, error) {
		return []domain.Product{
			{ID: 1, Name: "Ceramic Mug", Slug: "ceramic-mug", SKU: &sku, Price: decimal.NewFromFloat(25.00), IsActive: true},
		}, nil, nil
	}}
	uc := NewSearchUseCase(svc)

	resp, err := uc.SearchProducts(context.Background(), SearchProductsRequest{ProductIDs: []uint{1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(resp.Products))
	}
	p := resp.Products[0]
	if p.ID != 1 || p.Name != "Ceramic Mug" || p.Slug != "ceramic-mug" || *p.SKU != "MUG-001" || !p.IsActive {
		t.Errorf("unexpected product DTO: %+v", p)
	}
	if resp.NotFound == nil || len(resp.NotFound) != 0 {
		t.Errorf("expected empty non-nil notFound, got %v", resp.NotFound)
	}
}
