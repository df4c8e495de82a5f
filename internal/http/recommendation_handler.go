package http

import (
	"fmt"
	"net/http"

	"github.com/fitportal/fitportal/internal/domain"
	"github.com/fitportal/fitportal/pkg/logger"
	"github.com/fitportal/fitportal/pkg/metrics"
)

type RecommendationHandler struct {
	service domain.SizingService
	logger  logger.Logger
}

func NewRecommendationHandler(service domain.SizingService, logger logger.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		service: service,
		logger:  logger,
	}
}

func (h *RecommendationHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/size-recommendations", metrics.Middleware("/api/size-recommendations", h.handleGet))
}

func (h *RecommendationHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	email := query.Get("customerEmail")
	if email == "" {
		WriteJSONError(w, "Missing customerEmail", http.StatusBadRequest)
		return
	}
	productType := query.Get("productType")

	if query.Get("history") == "true" {
		recs, err := h.service.GetHistory(r.Context(), email, productType)
		if err != nil {
			if _, ok := err.(domain.ValidationError); ok {
				WriteJSONError(w, err.Error(), http.StatusBadRequest)
				return
			}
			h.logger.Error(fmt.Sprintf("Failed to get recommendation history: %v", err))
			WriteJSONError(w, "Failed to get recommendation history", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"recommendations": recs,
		})
		return
	}

	recommendation, err := h.service.GetRecommendation(r.Context(), email, productType, query.Get("brand"), query.Get("collection"))
	if err != nil {
		if _, ok := err.(domain.ValidationError); ok {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error(fmt.Sprintf("Failed to compute size recommendation: %v", err))
		WriteJSONError(w, "Failed to compute size recommendation", http.StatusInternalServerError)
		return
	}
	if recommendation == nil {
		// Missing measurements or charts are an expected state, not a
		// server fault.
		WriteJSONError(w, "No recommendation available for this customer and product type", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"recommendation": recommendation,
	})
}
