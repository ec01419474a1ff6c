package order

import (
	"database/sql"

	catalogrepo "storefront/internal/catalog/repository"
	"storefront/internal/config"
	"storefront/internal/notification"
	"storefront/internal/order/controller"
	orderrepo "storefront/internal/order/repository"
	"storefront/internal/order/service"
	"storefront/internal/order/usecase"
	userrepo "storefront/internal/user/repository"
	usersvc "storefront/internal/user/service"

	"go.uber.org/zap"
)

func NewModule(db *sql.DB, cfg *config.Config, mailer notification.Mailer, logger *zap.Logger) *controller.OrderController {
	orderRepo := orderrepo.NewMySQLOrderRepository(db)
	orderItemRepo := orderrepo.NewMySQLOrderItemRepository(db)
	serviceItemRepo := orderrepo.NewMySQLOrderServiceItemRepository(db)
	statusRepo := orderrepo.NewMySQLStatusRepository(db)
	productRepo := catalogrepo.NewMySQLProductRepository(db)
	serviceRepo := catalogrepo.NewMySQLServiceRepository(db)
	guestResolver := usersvc.NewGuestResolver(userrepo.NewMySQLUserRepository(db), logger)

	checkout := service.NewCheckoutService(
		db,
		statusRepo,
		orderRepo,
		orderItemRepo,
		serviceItemRepo,
		productRepo,
		serviceRepo,
		guestResolver,
		service.NewOrderNumberGenerator(),
		logger,
		cfg.Order.TxTimeout,
		cfg.Order.NumberMaxAttempts,
	)

	notifier := notification.NewNotifier(
		orderRepo,
		orderItemRepo,
		serviceItemRepo,
		productRepo,
		serviceRepo,
		mailer,
		cfg.Mail,
		logger,
	)

	createUC := usecase.NewCreateOrderUseCase(checkout, notifier, logger)
	getUC := usecase.NewGetOrderUseCase(orderRepo, orderItemRepo, serviceItemRepo, statusRepo)
	statusUC := usecase.NewUpdateOrderStatusUseCase(orderRepo, statusRepo, logger)

	return controller.NewOrderController(createUC, getUC, statusUC, logger)
}
