package catalog

import (
	"database/sql"

	"storefront/internal/catalog/repository"

	"go.uber.org/zap"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLProductRepository(db)
	svc := NewService(repo)
	uc := NewSearchUseCase(svc)
	return NewController(uc, logger)
}
