package server

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"storefront/internal/catalog"
	ordercontroller "storefront/internal/order/controller"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func NewRouter(
	orderCtrl *ordercontroller.OrderController,
	catalogCtrl *catalog.Controller,
	db *sql.DB,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", handleHealth(db, logger))

	r.Route("/api", func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.Post("/", orderCtrl.HandleCreateOrder)
			r.Get("/{orderNumber}", orderCtrl.HandleGetOrder)
			r.Patch("/{orderId}/status", orderCtrl.HandleUpdateStatus)
		})
		r.Post("/products/search", catalogCtrl.HandleSearchProducts)
	})

	return r
}

func handleHealth(db *sql.DB, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if err := db.PingContext(r.Context()); err != nil {
			logger.Warn("health check database ping failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]string{"status": "degraded"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}
