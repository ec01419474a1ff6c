package service

import (
	"context"
	"database/sql"
	"time"

	"storefront/internal/domain"
	"storefront/internal/dto"
	apperrors "storefront/internal/errors"
	"storefront/internal/infrastructure/mysql"
	usersvc "storefront/internal/user/service"

	"go.uber.org/zap"
)

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type StatusRepository interface {
	FindIDByNameTx(ctx context.Context, tx *sql.Tx, name string) (int, error)
}

type OrderRepository interface {
	InsertTx(ctx context.Context, tx *sql.Tx, order domain.Order) (uint, error)
}

type OrderItemRepository interface {
	InsertTx(ctx context.Context, tx *sql.Tx, item domain.OrderItem) (uint, error)
}

type OrderServiceItemRepository interface {
	InsertTx(ctx context.Context, tx *sql.Tx, item domain.OrderServiceItem) (uint, error)
}

type ProductReader interface {
	FindByIDTx(ctx context.Context, tx *sql.Tx, id uint) (*domain.Product, error)
}

type ServiceReader interface {
	FindByIDTx(ctx context.Context, tx *sql.Tx, id uint) (*domain.Service, error)
}

type GuestResolver interface {
	Resolve(ctx context.Context, tx *sql.Tx, in usersvc.GuestInput) (*usersvc.GuestResolution, error)
}

type NumberGenerator interface {
	Generate() string
}

// CheckoutService persists an order atomically: guest resolution, status
// lookup, header insert and line-item snapshots all run in one transaction.
// A failure at any step leaves no partial order behind.
type CheckoutService struct {
	db                TransactionManager
	statusRepo        StatusRepository
	orderRepo         OrderRepository
	orderItemRepo     OrderItemRepository
	serviceItemRepo   OrderServiceItemRepository
	productReader     ProductReader
	serviceReader     ServiceReader
	guestResolver     GuestResolver
	numberGen         NumberGenerator
	logger            *zap.Logger
	txTimeout         time.Duration
	numberMaxAttempts int
}

func NewCheckoutService(
	db TransactionManager,
	statusRepo StatusRepository,
	orderRepo OrderRepository,
	orderItemRepo OrderItemRepository,
	serviceItemRepo OrderServiceItemRepository,
	productReader ProductReader,
	serviceReader ServiceReader,
	guestResolver GuestResolver,
	numberGen NumberGenerator,
	logger *zap.Logger,
	txTimeout time.Duration,
	numberMaxAttempts int,
) *CheckoutService {
	return &CheckoutService{
		db:                db,
		statusRepo:        statusRepo,
		orderRepo:         orderRepo,
		orderItemRepo:     orderItemRepo,
		serviceItemRepo:   serviceItemRepo,
		productReader:     productReader,
		serviceReader:     serviceReader,
		guestResolver:     guestResolver,
		numberGen:         numberGen,
		logger:            logger,
		txTimeout:         txTimeout,
		numberMaxAttempts: numberMaxAttempts,
	}
}

func (s *CheckoutService) PlaceOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, nil)
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return nil, apperrors.NewInternalError("beginning order transaction", err)
	}
	// Rollback on any exit path. MySQL ignores it once committed.
	defer tx.Rollback()

	userID, shippingAddressID, err := s.resolveUser(txCtx, tx, req)
	if err != nil {
		return nil, err
	}

	statusID, err := s.statusRepo.FindIDByNameTx(txCtx, tx, domain.OrderStatusPending)
	if err != nil {
		return nil, err
	}

	orderID, orderNumber, err := s.insertHeader(txCtx, tx, req, userID, statusID, shippingAddressID)
	if err != nil {
		return nil, err
	}

	for _, input := range req.Items {
		product, err := s.productReader.FindByIDTx(txCtx, tx, input.ProductID)
		if err != nil {
			return nil, err
		}

		item := domain.NewOrderItemSnapshot(orderID, *product, input.VariantID, normalizeQuantity(input.Quantity))
		if _, err := s.orderItemRepo.InsertTx(txCtx, tx, item); err != nil {
			return nil, err
		}
	}

	for _, input := range req.ServiceItems {
		svc, err := s.serviceReader.FindByIDTx(txCtx, tx, input.ServiceID)
		if err != nil {
			return nil, err
		}

		item := domain.NewOrderServiceItemSnapshot(orderID, *svc, input.ScheduleID, normalizeQuantity(input.Quantity))
		if _, err := s.serviceItemRepo.InsertTx(txCtx, tx, item); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit order transaction", zap.Error(err))
		return nil, apperrors.NewInternalError("committing order transaction", err)
	}

	s.logger.Info("order created",
		zap.Uint("orderId", orderID),
		zap.String("orderNumber", orderNumber),
		zap.Uint("userId", userID),
		zap.Int("itemCount", len(req.Items)),
		zap.Int("serviceItemCount", len(req.ServiceItems)),
	)

	return &dto.CreateOrderResponse{
		ID:          orderID,
		OrderNumber: orderNumber,
	}, nil
}

func (s *CheckoutService) resolveUser(ctx context.Context, tx *sql.Tx, req dto.CreateOrderRequest) (uint, *uint, error) {
	if req.UserID != nil {
		return *req.UserID, req.ShippingAddressID, nil
	}

	resolution, err := s.guestResolver.Resolve(ctx, tx, usersvc.GuestInput{
		Email:          req.CustomerEmail,
		Phone:          req.CustomerPhone,
		DisplayName:    req.CustomerName,
		ShippingMethod: req.ShippingMethod,
		Address:        req.Address,
	})
	if err != nil {
		return 0, nil, err
	}

	shippingAddressID := req.ShippingAddressID
	if shippingAddressID == nil {
		shippingAddressID = resolution.ShippingAddressID
	}

	return resolution.UserID, shippingAddressID, nil
}

// insertHeader inserts the order row, regenerating the order number on the
// statistically unlikely unique-index collision.
func (s *CheckoutService) insertHeader(
	ctx context.Context,
	tx *sql.Tx,
	req dto.CreateOrderRequest,
	userID uint,
	statusID int,
	shippingAddressID *uint,
) (uint, string, error) {
	order := domain.Order{
		UserID:            userID,
		StatusID:          statusID,
		Subtotal:          req.Subtotal,
		TaxAmount:         req.TaxAmount,
		ShippingAmount:    req.ShippingAmount,
		DiscountAmount:    req.DiscountAmount,
		TotalAmount:       *req.TotalAmount,
		ShippingAddressID: shippingAddressID,
		BillingAddressID:  req.BillingAddressID,
		Notes:             req.Notes,
		CustomerEmail:     req.CustomerEmail,
		CustomerPhone:     req.CustomerPhone,
		CustomerName:      req.CustomerName,
		PaymentMethod:     req.PaymentMethod,
		ShippingMethod:    req.ShippingMethod,
	}

	attempts := s.numberMaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		order.OrderNumber = s.numberGen.Generate()

		orderID, err := s.orderRepo.InsertTx(ctx, tx, order)
		if err == nil {
			return orderID, order.OrderNumber, nil
		}

		if !mysql.IsDuplicateEntry(err) {
			return 0, "", err
		}

		s.logger.Warn("order number collision, regenerating",
			zap.String("orderNumber", order.OrderNumber), zap.Int("attempt", attempt))
		lastErr = err
	}

	return 0, "", apperrors.NewConflictError("could not allocate a unique order number: " + lastErr.Error())
}

func normalizeQuantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}
