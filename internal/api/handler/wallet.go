package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pixelana/pixelana-go/internal/api/middleware"
	"github.com/pixelana/pixelana-go/internal/api/request"
	"github.com/pixelana/pixelana-go/internal/api/response"
	"github.com/pixelana/pixelana-go/internal/model"
	"github.com/pixelana/pixelana-go/internal/services/auth"
)

// WalletHandler handles wallet and session endpoints
type WalletHandler struct {
	authService *auth.Service
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(authService *auth.Service) *WalletHandler {
	return &WalletHandler{authService: authService}
}

// Register handles POST /api/v1/wallets/register
func (h *WalletHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Passphrase == "" {
		WriteError(w, NewInvalidRequestError("passphrase is required"))
		return
	}

	session, err := h.authService.Register(r.Context(), req.Passphrase)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.AuthResponseFromSession(session))
}

// Login handles POST /api/v1/wallets/login
func (h *WalletHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	session, err := h.authService.Login(r.Context(), model.Identity(req.Identity), req.Passphrase)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AuthResponseFromSession(session))
}

// Me handles GET /api/v1/wallets/me
func (h *WalletHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity := middleware.MustGetIdentity(r.Context())
	session := middleware.GetSession(r.Context())

	response.JSON(w, http.StatusOK, response.AuthResponse{
		Identity:     string(identity),
		SessionToken: session.Token,
	})
}
