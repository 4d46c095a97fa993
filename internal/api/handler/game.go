package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pixelana/pixelana-go/internal/api/middleware"
	"github.com/pixelana/pixelana-go/internal/api/request"
	"github.com/pixelana/pixelana-go/internal/api/response"
	"github.com/pixelana/pixelana-go/internal/model"
	"github.com/pixelana/pixelana-go/internal/services/game"
)

// GameHandler handles game endpoints
type GameHandler struct {
	gameController *game.Controller
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController *game.Controller) *GameHandler {
	return &GameHandler{gameController: gameController}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := middleware.MustGetIdentity(r.Context())

	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	cfg := model.GameConfig{
		Capacity:        req.Capacity,
		MinParticipants: req.MinParticipants,
	}

	g, err := h.gameController.Initialize(r.Context(), model.GameID(req.ID), identity, cfg)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(g))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	g, err := h.gameController.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Join handles POST /api/v1/games/{id}/join
func (h *GameHandler) Join(w http.ResponseWriter, r *http.Request) {
	identity := middleware.MustGetIdentity(r.Context())
	id := model.GameID(mux.Vars(r)["id"])

	g, err := h.gameController.Join(r.Context(), id, identity)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Start handles POST /api/v1/games/{id}/start
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	identity := middleware.MustGetIdentity(r.Context())
	id := model.GameID(mux.Vars(r)["id"])

	g, err := h.gameController.Start(r.Context(), id, identity)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// SubmitStory handles POST /api/v1/games/{id}/story
func (h *GameHandler) SubmitStory(w http.ResponseWriter, r *http.Request) {
	identity := middleware.MustGetIdentity(r.Context())
	id := model.GameID(mux.Vars(r)["id"])

	var req request.SubmitStoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	g, err := h.gameController.SubmitStory(r.Context(), id, identity, req.Story)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// SubmitDrawing handles POST /api/v1/games/{id}/drawings
func (h *GameHandler) SubmitDrawing(w http.ResponseWriter, r *http.Request) {
	identity := middleware.MustGetIdentity(r.Context())
	id := model.GameID(mux.Vars(r)["id"])

	var req request.SubmitDrawingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	g, err := h.gameController.SubmitDrawing(r.Context(), id, identity, req.Ref)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// SelectWinner handles POST /api/v1/games/{id}/winner
func (h *GameHandler) SelectWinner(w http.ResponseWriter, r *http.Request) {
	identity := middleware.MustGetIdentity(r.Context())
	id := model.GameID(mux.Vars(r)["id"])

	var req request.SelectWinnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	g, err := h.gameController.SelectWinner(r.Context(), id, identity, req.Index)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Mint handles POST /api/v1/games/{id}/mint
func (h *GameHandler) Mint(w http.ResponseWriter, r *http.Request) {
	identity := middleware.MustGetIdentity(r.Context())
	id := model.GameID(mux.Vars(r)["id"])

	g, receipt, err := h.gameController.MintNFT(r.Context(), id, identity)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MintResponseFrom(g, receipt))
}
