package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pixelana/pixelana-go/internal/api/middleware"
	"github.com/pixelana/pixelana-go/internal/api/request"
	"github.com/pixelana/pixelana-go/internal/api/response"
	"github.com/pixelana/pixelana-go/internal/services/player"
	"github.com/pixelana/pixelana-go/internal/services/vault"
)

// VaultHandler handles vault endpoints
type VaultHandler struct {
	vaultService  *vault.Service
	playerService *player.Service
}

// NewVaultHandler creates a new vault handler
func NewVaultHandler(vaultService *vault.Service, playerService *player.Service) *VaultHandler {
	return &VaultHandler{
		vaultService:  vaultService,
		playerService: playerService,
	}
}

// Initialize handles POST /api/v1/vault
func (h *VaultHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	identity := middleware.MustGetIdentity(r.Context())

	v, err := h.vaultService.Initialize(r.Context(), identity)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.VaultFromModel(v))
}

// Get handles GET /api/v1/vault
func (h *VaultHandler) Get(w http.ResponseWriter, r *http.Request) {
	v, err := h.vaultService.Get(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.VaultFromModel(v))
}

// Deposit handles POST /api/v1/vault/deposit
func (h *VaultHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	identity := middleware.MustGetIdentity(r.Context())

	var req request.DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	p, err := h.playerService.Deposit(r.Context(), identity, req.Amount)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(p))
}
