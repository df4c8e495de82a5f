package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fitportal/fitportal/internal/domain"
	"github.com/fitportal/fitportal/internal/service"
	"github.com/fitportal/fitportal/pkg/logger"
	"github.com/fitportal/fitportal/pkg/metrics"
)

type AuthHandler struct {
	service domain.AuthService
	logger  logger.Logger
}

func NewAuthHandler(service domain.AuthService, logger logger.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

func (h *AuthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/admin/auth", metrics.Middleware("/api/admin/auth", h.handleAdminAuth))
	mux.HandleFunc("/api/auth/register", metrics.Middleware("/api/auth/register", h.handleRegister))
	mux.HandleFunc("/api/auth/login", metrics.Middleware("/api/auth/login", h.handleLogin))
}

type adminAuthRequest struct {
	Password string `json:"password"`
}

func (h *AuthHandler) handleAdminAuth(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.handleAdminLogin(w, r)
	case http.MethodGet:
		h.handleAdminVerify(w, r)
	default:
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *AuthHandler) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Password == "" {
		WriteJSONError(w, "Missing password", http.StatusBadRequest)
		return
	}

	token, expiresAt, err := h.service.AdminLogin(r.Context(), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			WriteJSONError(w, "Invalid password", http.StatusUnauthorized)
			return
		}
		h.logger.Error(fmt.Sprintf("Admin login failed: %v", err))
		WriteJSONError(w, "Authentication failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token":     token,
		"expiresAt": expiresAt,
	})
}

func (h *AuthHandler) handleAdminVerify(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		WriteJSONError(w, "Invalid authorization header format", http.StatusUnauthorized)
		return
	}

	if err := h.service.VerifyAdminToken(parts[1]); err != nil {
		WriteJSONError(w, "Invalid or expired token", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"valid": true,
	})
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch err.(type) {
		case domain.ValidationError:
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
		case *domain.ErrAccountExists:
			WriteJSONError(w, "An account with this email already exists", http.StatusConflict)
		default:
			h.logger.Error(fmt.Sprintf("Failed to register account: %v", err))
			WriteJSONError(w, "Failed to register account", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			WriteJSONError(w, "Invalid email or password", http.StatusUnauthorized)
			return
		}
		if _, ok := err.(domain.ValidationError); ok {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error(fmt.Sprintf("Failed to log in: %v", err))
		WriteJSONError(w, "Failed to log in", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
