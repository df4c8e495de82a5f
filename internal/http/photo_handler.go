package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/fitportal/fitportal/internal/domain"
	"github.com/fitportal/fitportal/internal/http/middleware"
	"github.com/fitportal/fitportal/pkg/filestore"
	"github.com/fitportal/fitportal/pkg/logger"
	"github.com/fitportal/fitportal/pkg/metrics"
	"github.com/fitportal/fitportal/pkg/ratelimiter"
)

// uploadRateNamespace groups upload attempts in the rate limiter, keyed by
// client IP.
const uploadRateNamespace = "upload"

type PhotoHandler struct {
	service    domain.PhotoService
	dispatcher domain.WebhookDispatcher
	store      *filestore.Store
	limiter    *ratelimiter.RateLimiter
	auth       middleware.AdminTokenVerifier
	logger     logger.Logger
}

func NewPhotoHandler(
	service domain.PhotoService,
	dispatcher domain.WebhookDispatcher,
	store *filestore.Store,
	limiter *ratelimiter.RateLimiter,
	auth middleware.AdminTokenVerifier,
	logger logger.Logger,
) *PhotoHandler {
	return &PhotoHandler{
		service:    service,
		dispatcher: dispatcher,
		store:      store,
		limiter:    limiter,
		auth:       auth,
		logger:     logger,
	}
}

func (h *PhotoHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/upload-photo", metrics.Middleware("/api/upload-photo", h.handleUpload))
	mux.HandleFunc("/api/photos/list", metrics.Middleware("/api/photos/list", h.handleList))
	mux.HandleFunc("/api/photos/update", metrics.Middleware("/api/photos/update", middleware.RequireAdmin(h.auth, h.handleUpdate)))
	mux.HandleFunc("/api/photos/serve/", metrics.Middleware("/api/photos/serve/", h.handleServe))
	mux.HandleFunc("/api/photos/retry-webhooks", metrics.Middleware("/api/photos/retry-webhooks", middleware.RequireAdmin(h.auth, h.handleRetryWebhooks)))
	mux.HandleFunc("/api/photos/stats", metrics.Middleware("/api/photos/stats", h.handleStats))
}

func (h *PhotoHandler) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if !h.limiter.Allow(uploadRateNamespace, clientIP(r)) {
		WriteJSONError(w, "Too many upload attempts, please try again later", http.StatusTooManyRequests)
		return
	}

	// Multipart overhead on top of the file itself.
	r.Body = http.MaxBytesReader(w, r.Body, h.store.MaxFileSize()+1<<20)
	if err := r.ParseMultipartForm(h.store.MaxFileSize()); err != nil {
		WriteJSONError(w, "Invalid multipart form or file too large", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		WriteJSONError(w, "Missing photo file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error(fmt.Sprintf("Failed to read uploaded file: %v", err))
		WriteJSONError(w, "Failed to read uploaded file", http.StatusBadRequest)
		return
	}

	mimeType := header.Header.Get("Content-Type")
	req := &domain.UploadPhotoRequest{
		CustomerEmail:         r.FormValue("customerEmail"),
		OriginalName:          header.Filename,
		MimeType:              mimeType,
		Size:                  int64(len(content)),
		Content:               content,
		IsVirtualFittingPhoto: r.FormValue("isVirtualFittingPhoto") == "true",
	}

	photo, err := h.service.UploadPhoto(r.Context(), req)
	if err != nil {
		switch err.(type) {
		case domain.ValidationError, *filestore.ErrInvalidFile:
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
		default:
			h.logger.Error(fmt.Sprintf("Failed to upload photo: %v", err))
			WriteJSONError(w, "Failed to upload photo", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Photo uploaded successfully",
		"data": map[string]interface{}{
			"id":            photo.ID,
			"photoUrl":      photo.PhotoURL,
			"status":        photo.Status,
			"customerEmail": photo.CustomerEmail,
			"createdAt":     photo.CreatedAt,
		},
	})
}

func (h *PhotoHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filter := domain.PhotoFilter{
		Email: r.URL.Query().Get("email"),
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := domain.ParsePhotoStatus(raw)
		if err != nil {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		filter.Status = &status
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			WriteJSONError(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		filter.Limit = limit
	}

	photos, err := h.service.ListPhotos(r.Context(), filter)
	if err != nil {
		h.logger.Error(fmt.Sprintf("Failed to list photos: %v", err))
		WriteJSONError(w, "Failed to list photos", http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"photos": photos,
		"total":  len(photos),
	}
	if r.URL.Query().Get("stats") == "true" {
		stats, err := h.service.GetStats(r.Context())
		if err != nil {
			h.logger.Error(fmt.Sprintf("Failed to get photo stats: %v", err))
			WriteJSONError(w, "Failed to get photo stats", http.StatusInternalServerError)
			return
		}
		response["stats"] = stats
	}

	writeJSON(w, http.StatusOK, response)
}

type updatePhotoRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func (h *PhotoHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut && r.Method != http.MethodPatch {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req updatePhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		WriteJSONError(w, "Missing photo id", http.StatusBadRequest)
		return
	}
	status, err := domain.ParsePhotoStatus(req.Status)
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	photo, err := h.service.UpdateStatus(r.Context(), req.ID, status)
	if err != nil {
		switch err.(type) {
		case *domain.ErrPhotoNotFound:
			WriteJSONError(w, "Photo not found", http.StatusNotFound)
		case *domain.ErrInvalidStatusTransition:
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
		case domain.ValidationError:
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
		default:
			h.logger.Error(fmt.Sprintf("Failed to update photo: %v", err))
			WriteJSONError(w, "Failed to update photo", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Photo status updated successfully",
		"data": map[string]interface{}{
			"id":        photo.ID,
			"status":    photo.Status,
			"updatedAt": photo.UpdatedAt,
		},
	})
}

func (h *PhotoHandler) handleServe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filename := strings.TrimPrefix(r.URL.Path, "/api/photos/serve/")
	// Any name the sanitizer would rewrite is treated as a traversal
	// attempt, not normalized.
	if filename == "" || filestore.SanitizeFilename(filename) != filename {
		WriteJSONError(w, "Invalid filename", http.StatusBadRequest)
		return
	}

	content, err := h.store.Open(filename)
	if err != nil {
		WriteJSONError(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", filestore.ContentTypeForExtension(filename))
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("X-Frame-Options", "DENY")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(content)
}

func (h *PhotoHandler) handleRetryWebhooks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	count, err := h.dispatcher.RetryFailed(r.Context())
	if err != nil {
		h.logger.Error(fmt.Sprintf("Failed to retry webhooks: %v", err))
		WriteJSONError(w, "Failed to retry webhooks", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"retried": count,
	})
}

func (h *PhotoHandler) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		h.logger.Error(fmt.Sprintf("Failed to get photo stats: %v", err))
		WriteJSONError(w, "Failed to get photo stats", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"stats": stats,
	})
}

// clientIP resolves the caller's address, preferring the first entry of
// X-Forwarded-For when a proxy sits in front.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if idx := strings.Index(forwarded, ","); idx > 0 {
			return strings.TrimSpace(forwarded[:idx])
		}
		return strings.TrimSpace(forwarded)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
