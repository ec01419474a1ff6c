package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"storefront/internal/dto"
	apperrors "storefront/internal/errors"
)

type mockCreateUseCase struct {
	CreateOrderFunc func(ctx context.Context, req dto.CreateOrderRequest) (*dto.CreateOrderResponse, error)
}

func (m *mockCreateUseCase) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	return m.CreateOrderFunc(ctx, req)
}

type mockGetUseCase struct {
	GetOrderByNumberFunc func(ctx context.Context, orderNumber string) (*dto.OrderDetailResponse, error)
}

func (m *mockGetUseCase) GetOrderByNumber(ctx context.Context, orderNumber string) (*dto.OrderDetailResponse, error) {
	return m.GetOrderByNumberFunc(ctx, orderNumber)
}

type mockStatusUseCase struct {
	UpdateStatusFunc func(ctx context.Context, orderID uint, statusName string) (*dto.UpdateOrderStatusResponse, error)
}

func (m *mockStatusUseCase) UpdateStatus(ctx context.Context, orderID uint, statusName string) (*dto.UpdateOrderStatusResponse, error) {
	return m.UpdateStatusFunc(ctx, orderID, statusName)
}

func newTestRouter(create *mockCreateUseCase, get *mockGetUseCase, status *mockStatusUseCase) http.Handler {
	ctrl := NewOrderController(create, get, status, zap.NewNop())

	r := chi.NewRouter()
	r.Post("/api/orders", ctrl.HandleCreateOrder)
	r.Get("/api/orders/{orderNumber}", ctrl.HandleGetOrder)
	r.Patch("/api/orders/{orderId}/status", ctrl.HandleUpdateStatus)
	return r
}

func TestHandleCreateOrder_Success(t *testing.T) {
	create := &mockCreateUseCase{
		CreateOrderFunc: func(ctx context.Context, req dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
			if req.CustomerEmail != "a@b.com" {
				t.Errorf("unexpected email: %s", req.CustomerEmail)
			}
			return &dto.CreateOrderResponse{ID: 12, OrderNumber: "ORD-1700000000000-AB12CD"}, nil
		},
	}
	router := newTestRouter(create, &mockGetUseCase{}, &mockStatusUseCase{})

	body := `{"customer_email":"a@b.com","total_amount":150.00,"items":[{"product_id":1,"quantity":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.CreateOrderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.ID != 12 || resp.OrderNumber != "ORD-1700000000000-AB12CD" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestHandleCreateOrder_ValidationFailure(t *testing.T) {
	create := &mockCreateUseCase{
		CreateOrderFunc: func(ctx context.Context, req dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
			return nil, apperrors.NewValidationError("Customer email, total amount, and at least one item are required")
		},
	}
	router := newTestRouter(create, &mockGetUseCase{}, &mockStatusUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["error"] != "Customer email, total amount, and at least one item are required" {
		t.Errorf("unexpected error message: %s", resp["error"])
	}
}

func TestHandleCreateOrder_InvalidJSON(t *testing.T) {
	router := newTestRouter(&mockCreateUseCase{}, &mockGetUseCase{}, &mockStatusUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleCreateOrder_MissingProductMapsTo404(t *testing.T) {
	create := &mockCreateUseCase{
		CreateOrderFunc: func(ctx context.Context, req dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
			return nil, apperrors.NewNotFoundError("product with id 99 not found")
		},
	}
	router := newTestRouter(create, &mockGetUseCase{}, &mockStatusUseCase{})

	body := `{"customer_email":"a@b.com","total_amount":10,"items":[{"product_id":99,"quantity":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var resp map[string]string
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["error"] != "product with id 99 not found" {
		t.Errorf("unexpected error message: %s", resp["error"])
	}
}

func TestHandleCreateOrder_InternalErrorMapsToGeneric500(t *testing.T) {
	create := &mockCreateUseCase{
		CreateOrderFunc: func(ctx context.Context, req dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
			return nil, apperrors.NewConfigurationError("order status 'pending' is not seeded")
		},
	}
	router := newTestRouter(create, &mockGetUseCase{}, &mockStatusUseCase{})

	body := `{"customer_email":"a@b.com","total_amount":10,"items":[{"product_id":1,"quantity":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp map[string]string
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["error"] != "Failed to create order" {
		t.Errorf("unexpected error message: %s", resp["error"])
	}
}

func TestHandleCreateOrder_PersistenceFailureMapsToGeneric500(t *testing.T) {
	create := &mockCreateUseCase{
		CreateOrderFunc: func(ctx context.Context, req dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
			return nil, apperrors.NewInternalError("committing order transaction", errors.New("driver: bad connection"))
		},
	}
	router := newTestRouter(create, &mockGetUseCase{}, &mockStatusUseCase{})

	body := `{"customer_email":"a@b.com","total_amount":10,"items":[{"product_id":1,"quantity":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp map[string]string
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["error"] != "Failed to create order" {
		t.Errorf("unexpected error message: %s", resp["error"])
	}
	if strings.Contains(rec.Body.String(), "bad connection") {
		t.Error("driver detail must not leak to the client")
	}
}

func TestHandleGetOrder_NotFound(t *testing.T) {
	get := &mockGetUseCase{
		GetOrderByNumberFunc: func(ctx context.Context, orderNumber string) (*dto.OrderDetailResponse, error) {
			return nil, apperrors.NewNotFoundError("order " + orderNumber + " not found")
		},
	}
	router := newTestRouter(&mockCreateUseCase{}, get, &mockStatusUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/api/orders/ORD-123-XYZ", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHandleGetOrder_Success(t *testing.T) {
	get := &mockGetUseCase{
		GetOrderByNumberFunc: func(ctx context.Context, orderNumber string) (*dto.OrderDetailResponse, error) {
			return &dto.OrderDetailResponse{
				ID:          3,
				OrderNumber: orderNumber,
				Status:      "pending",
			}, nil
		},
	}
	router := newTestRouter(&mockCreateUseCase{}, get, &mockStatusUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/api/orders/ORD-123-XYZ", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.OrderDetailResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.OrderNumber != "ORD-123-XYZ" || resp.Status != "pending" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestHandleUpdateStatus_InvalidOrderID(t *testing.T) {
	router := newTestRouter(&mockCreateUseCase{}, &mockGetUseCase{}, &mockStatusUseCase{})

	req := httptest.NewRequest(http.MethodPatch, "/api/orders/abc/status", strings.NewReader(`{"status":"cancelled"}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleUpdateStatus_Success(t *testing.T) {
	status := &mockStatusUseCase{
		UpdateStatusFunc: func(ctx context.Context, orderID uint, statusName string) (*dto.UpdateOrderStatusResponse, error) {
			if orderID != 7 || statusName != "cancelled" {
				t.Errorf("unexpected args: %d %s", orderID, statusName)
			}
			return &dto.UpdateOrderStatusResponse{ID: orderID, Status: statusName}, nil
		},
	}
	router := newTestRouter(&mockCreateUseCase{}, &mockGetUseCase{}, status)

	req := httptest.NewRequest(http.MethodPatch, "/api/orders/7/status", strings.NewReader(`{"status":"cancelled"}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}
