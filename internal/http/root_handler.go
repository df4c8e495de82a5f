package http

import (
	"database/sql"
	"net/http"

	"github.com/fitportal/fitportal/pkg/logger"
	"github.com/fitportal/fitportal/pkg/metrics"
)

type RootHandler struct {
	db      *sql.DB
	version string
	logger  logger.Logger
}

func NewRootHandler(db *sql.DB, version string, logger logger.Logger) *RootHandler {
	return &RootHandler{
		db:      db,
		version: version,
		logger:  logger,
	}
}

func (h *RootHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", metrics.Middleware("/", h.handleRoot))
	mux.HandleFunc("/health", metrics.Middleware("/health", h.handleHealth))
	mux.Handle("/metrics", metrics.Handler())
}

func (h *RootHandler) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		WriteJSONError(w, "Not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"service": "FitPortal API",
		"version": h.version,
		"status":  "ok",
	})
}

func (h *RootHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		h.logger.Error("Health check failed: database unreachable")
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":   "unhealthy",
			"database": "unreachable",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "healthy",
		"database": "ok",
	})
}
