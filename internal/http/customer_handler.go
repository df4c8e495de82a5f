package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fitportal/fitportal/internal/domain"
	"github.com/fitportal/fitportal/pkg/logger"
	"github.com/fitportal/fitportal/pkg/metrics"
)

type CustomerHandler struct {
	service domain.CustomerService
	logger  logger.Logger
}

func NewCustomerHandler(service domain.CustomerService, logger logger.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		logger:  logger,
	}
}

func (h *CustomerHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/customer/profile", metrics.Middleware("/api/customer/profile", h.handleProfile))
	mux.HandleFunc("/api/customer/measurements", metrics.Middleware("/api/customer/measurements", h.handleMeasurements))
}

func (h *CustomerHandler) handleProfile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleGetProfile(w, r)
	case http.MethodPost:
		h.handleUpsertProfile(w, r)
	default:
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *CustomerHandler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		WriteJSONError(w, "Missing email", http.StatusBadRequest)
		return
	}

	customer, err := h.service.GetProfile(r.Context(), email)
	if err != nil {
		switch err.(type) {
		case domain.ValidationError:
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
		case *domain.ErrCustomerNotFound:
			WriteJSONError(w, "Customer not found", http.StatusNotFound)
		default:
			h.logger.Error(fmt.Sprintf("Failed to get customer profile: %v", err))
			WriteJSONError(w, "Failed to get customer profile", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"customer": customer,
	})
}

func (h *CustomerHandler) handleUpsertProfile(w http.ResponseWriter, r *http.Request) {
	var req domain.UpsertCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	customer, err := h.service.UpsertProfile(r.Context(), &req)
	if err != nil {
		if _, ok := err.(domain.ValidationError); ok {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error(fmt.Sprintf("Failed to upsert customer profile: %v", err))
		WriteJSONError(w, "Failed to save customer profile", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"customer": customer,
	})
}

func (h *CustomerHandler) handleMeasurements(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleGetMeasurements(w, r)
	case http.MethodPost:
		h.handleUpsertMeasurements(w, r)
	default:
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *CustomerHandler) handleGetMeasurements(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		WriteJSONError(w, "Missing email", http.StatusBadRequest)
		return
	}

	measurements, err := h.service.GetMeasurements(r.Context(), email)
	if err != nil {
		switch err.(type) {
		case domain.ValidationError:
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
		case *domain.ErrMeasurementsNotFound:
			WriteJSONError(w, "Measurements not found", http.StatusNotFound)
		default:
			h.logger.Error(fmt.Sprintf("Failed to get measurements: %v", err))
			WriteJSONError(w, "Failed to get measurements", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"measurements": measurements,
	})
}

func (h *CustomerHandler) handleUpsertMeasurements(w http.ResponseWriter, r *http.Request) {
	var req domain.UpsertMeasurementsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	measurements, err := h.service.UpsertMeasurements(r.Context(), &req)
	if err != nil {
		if _, ok := err.(domain.ValidationError); ok {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error(fmt.Sprintf("Failed to upsert measurements: %v", err))
		WriteJSONError(w, "Failed to save measurements", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"measurements": measurements,
	})
}
