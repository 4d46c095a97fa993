package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pixelana/pixelana-go/internal/api/handler"
	"github.com/pixelana/pixelana-go/internal/api/middleware"
	"github.com/pixelana/pixelana-go/internal/services/auth"
	"github.com/pixelana/pixelana-go/internal/services/game"
	"github.com/pixelana/pixelana-go/internal/services/player"
	"github.com/pixelana/pixelana-go/internal/services/vault"
	appmiddleware "github.com/pixelana/pixelana-go/internal/middleware"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	AuthService    *auth.Service
	VaultService   *vault.Service
	PlayerService  *player.Service
	GameController *game.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	walletHandler := handler.NewWalletHandler(cfg.AuthService)
	vaultHandler := handler.NewVaultHandler(cfg.VaultService, cfg.PlayerService)
	playerHandler := handler.NewPlayerHandler(cfg.PlayerService)
	gameHandler := handler.NewGameHandler(cfg.GameController)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := appmiddleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Wallet routes (no auth required for registering/logging in)
	api.HandleFunc("/wallets/register", walletHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/wallets/login", walletHandler.Login).Methods(http.MethodPost)

	walletProtected := api.PathPrefix("/wallets").Subrouter()
	walletProtected.Use(authMiddleware)
	walletProtected.HandleFunc("/me", walletHandler.Me).Methods(http.MethodGet)

	// Vault routes (all require auth; creation is creator-gated in the service)
	vaults := api.PathPrefix("/vault").Subrouter()
	vaults.Use(authMiddleware)
	vaults.HandleFunc("", vaultHandler.Initialize).Methods(http.MethodPost)
	vaults.HandleFunc("", vaultHandler.Get).Methods(http.MethodGet)
	vaults.HandleFunc("/deposit", vaultHandler.Deposit).Methods(http.MethodPost)

	// Player routes (all require auth; operations are self-service)
	players := api.PathPrefix("/players").Subrouter()
	players.Use(authMiddleware)
	players.HandleFunc("", playerHandler.Initialize).Methods(http.MethodPost)
	players.HandleFunc("/me", playerHandler.Me).Methods(http.MethodGet)

	// Game routes (all require auth)
	games := api.PathPrefix("/games").Subrouter()
	games.Use(authMiddleware)
	games.HandleFunc("", gameHandler.Create).Methods(http.MethodPost)
	games.HandleFunc("/{id}", gameHandler.Get).Methods(http.MethodGet)
	games.HandleFunc("/{id}/join", gameHandler.Join).Methods(http.MethodPost)
	games.HandleFunc("/{id}/start", gameHandler.Start).Methods(http.MethodPost)
	games.HandleFunc("/{id}/story", gameHandler.SubmitStory).Methods(http.MethodPost)
	games.HandleFunc("/{id}/drawings", gameHandler.SubmitDrawing).Methods(http.MethodPost)
	games.HandleFunc("/{id}/winner", gameHandler.SelectWinner).Methods(http.MethodPost)
	games.HandleFunc("/{id}/mint", gameHandler.Mint).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
