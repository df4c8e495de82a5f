package http

import (
	"fmt"
	"net/http"

	"github.com/fitportal/fitportal/internal/domain"
	"github.com/fitportal/fitportal/pkg/logger"
	"github.com/fitportal/fitportal/pkg/metrics"
)

type OrderHandler struct {
	service domain.ShopifyService
	logger  logger.Logger
}

func NewOrderHandler(service domain.ShopifyService, logger logger.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger,
	}
}

func (h *OrderHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/shopify/orders", metrics.Middleware("/api/shopify/orders", h.handleOrders))
}

func (h *OrderHandler) handleOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if !h.service.Enabled() {
		WriteJSONError(w, "Shopify integration not configured", http.StatusServiceUnavailable)
		return
	}

	email := r.URL.Query().Get("customerEmail")
	if email == "" {
		WriteJSONError(w, "Missing customerEmail", http.StatusBadRequest)
		return
	}

	if r.URL.Query().Get("sync") == "true" {
		orders, err := h.service.SyncOrders(r.Context(), email)
		if err != nil {
			if _, ok := err.(domain.ValidationError); ok {
				WriteJSONError(w, err.Error(), http.StatusBadRequest)
				return
			}
			h.logger.Error(fmt.Sprintf("Failed to sync Shopify orders: %v", err))
			WriteJSONError(w, "Failed to sync orders from Shopify", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"orders": orders,
			"synced": true,
		})
		return
	}

	orders, err := h.service.ListCachedOrders(r.Context(), email)
	if err != nil {
		if _, ok := err.(domain.ValidationError); ok {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error(fmt.Sprintf("Failed to list Shopify orders: %v", err))
		WriteJSONError(w, "Failed to list orders", http.StatusInternalServerError)
		return
	}

	// The live customer lookup enriches the response but must not fail it.
	var customer *domain.ShopifyCustomer
	if c, err := h.service.GetCustomer(r.Context(), email); err != nil {
		h.logger.Warn(fmt.Sprintf("Could not fetch Shopify customer: %v", err))
	} else {
		customer = c
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"orders":          orders,
		"shopifyCustomer": customer,
	})
}
