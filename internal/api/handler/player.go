package handler

import (
	"net/http"

	"github.com/pixelana/pixelana-go/internal/api/middleware"
	"github.com/pixelana/pixelana-go/internal/api/response"
	"github.com/pixelana/pixelana-go/internal/services/player"
)

// PlayerHandler handles player record endpoints
type PlayerHandler struct {
	playerService *player.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService *player.Service) *PlayerHandler {
	return &PlayerHandler{playerService: playerService}
}

// Initialize handles POST /api/v1/players
// Idempotent: re-initializing returns the existing record unchanged.
func (h *PlayerHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	identity := middleware.MustGetIdentity(r.Context())

	p, err := h.playerService.Initialize(r.Context(), identity)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(p))
}

// Me handles GET /api/v1/players/me
func (h *PlayerHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity := middleware.MustGetIdentity(r.Context())

	p, err := h.playerService.Get(r.Context(), identity)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(p))
}
