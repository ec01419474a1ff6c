package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"storefront/internal/dto"
	apperrors "storefront/internal/errors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CreateOrderUseCase interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.CreateOrderResponse, error)
}

type GetOrderUseCase interface {
	GetOrderByNumber(ctx context.Context, orderNumber string) (*dto.OrderDetailResponse, error)
}

type UpdateOrderStatusUseCase interface {
	UpdateStatus(ctx context.Context, orderID uint, statusName string) (*dto.UpdateOrderStatusResponse, error)
}

type OrderController struct {
	createUseCase CreateOrderUseCase
	getUseCase    GetOrderUseCase
	statusUseCase UpdateOrderStatusUseCase
	logger        *zap.Logger
}

func NewOrderController(
	createUseCase CreateOrderUseCase,
	getUseCase GetOrderUseCase,
	statusUseCase UpdateOrderStatusUseCase,
	logger *zap.Logger,
) *OrderController {
	return &OrderController{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		statusUseCase: statusUseCase,
		logger:        logger,
	}
}

func (c *OrderController) HandleCreateOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Request body must be valid JSON",
		})
		return
	}

	resp, err := c.createUseCase.CreateOrder(r.Context(), req)
	if err != nil {
		c.handleCreateError(w, err, logger)
		return
	}

	logger.Info("order creation accepted",
		zap.Uint("orderId", resp.ID), zap.String("orderNumber", resp.OrderNumber))

	c.writeJSON(w, http.StatusCreated, resp)
}

func (c *OrderController) handleCreateError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		logger.Warn("order validation failed", zap.Error(ve))
		c.writeJSON(w, http.StatusBadRequest, map[string]string{"error": ve.Message})
		return
	}

	// Missing referenced product/service surfaces as 404 with the detail
	// kept, rather than the legacy opaque 500. The transaction has already
	// rolled back by the time this runs.
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		logger.Warn("order references missing entity", zap.Error(nfe))
		c.writeJSON(w, http.StatusNotFound, map[string]string{"error": nfe.Message})
		return
	}

	if ce, ok := apperrors.IsConfigurationError(err); ok {
		logger.Error("order creation blocked by seed data defect", zap.Error(ce))
	} else {
		logger.Error("order creation failed", zap.Error(err))
	}

	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": "Failed to create order",
	})
}

func (c *OrderController) HandleGetOrder(w http.ResponseWriter, r *http.Request) {
	orderNumber := chi.URLParam(r, "orderNumber")

	resp, err := c.getUseCase.GetOrderByNumber(r.Context(), orderNumber)
	if err != nil {
		if nfe, ok := apperrors.IsNotFoundError(err); ok {
			c.writeJSON(w, http.StatusNotFound, map[string]string{"error": nfe.Message})
			return
		}
		c.logger.Error("get order failed", zap.String("orderNumber", orderNumber), zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch order",
		})
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *OrderController) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderIDStr := chi.URLParam(r, "orderId")
	orderID, err := strconv.ParseUint(orderIDStr, 10, 64)
	if err != nil {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "orderId must be a positive integer",
		})
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Request body must be valid JSON",
		})
		return
	}

	resp, err := c.statusUseCase.UpdateStatus(r.Context(), uint(orderID), req.Status)
	if err != nil {
		if ve, ok := apperrors.IsValidationError(err); ok {
			c.writeJSON(w, http.StatusBadRequest, map[string]string{"error": ve.Message})
			return
		}
		if nfe, ok := apperrors.IsNotFoundError(err); ok {
			c.writeJSON(w, http.StatusNotFound, map[string]string{"error": nfe.Message})
			return
		}
		c.logger.Error("update order status failed", zap.Uint64("orderId", orderID), zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Failed to update order status",
		})
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
