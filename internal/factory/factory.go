package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/pixelana/pixelana-go/internal/dependencies/clock"
	"github.com/pixelana/pixelana-go/internal/dependencies/random"
	"github.com/pixelana/pixelana-go/internal/mint"
	"github.com/pixelana/pixelana-go/internal/model"
	"github.com/pixelana/pixelana-go/internal/services/auth"
	"github.com/pixelana/pixelana-go/internal/services/game"
	"github.com/pixelana/pixelana-go/internal/services/player"
	"github.com/pixelana/pixelana-go/internal/services/vault"
	"github.com/pixelana/pixelana-go/internal/storage"
	"github.com/pixelana/pixelana-go/internal/storage/memory"
	redisstorage "github.com/pixelana/pixelana-go/internal/storage/redis"
	sqlitestorage "github.com/pixelana/pixelana-go/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	Minter mint.Minter

	// Services
	AuthService    *auth.Service
	VaultService   *vault.Service
	PlayerService  *player.Service
	GameController *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// VaultCreator is the identity allowed to initialize the vault
	VaultCreator model.Identity
	// AuthConfig holds configuration for the auth service (optional)
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend (memory, redis, or sqlite)
	// If empty, defaults to memory
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is redis)
	RedisConfig *redisstorage.Config
	// SQLitePath is the database path (required if StorageType is sqlite)
	SQLitePath string
	// Minter is the minting collaborator (optional)
	// If nil, the local minter is used
	Minter mint.Minter
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		sqliteStore, err := sqlitestorage.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store = sqliteStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'redis', or 'sqlite'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	minter := cfg.Minter
	if minter == nil {
		minter = mint.NewLocalMinter()
	}

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(store, clk, rnd, minter, cfg.VaultCreator, authCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	minter mint.Minter,
	vaultCreator model.Identity,
	authCfg auth.Config,
	logger *slog.Logger,
) *App {
	authService := auth.New(store, clk, rnd, authCfg)
	vaultService := vault.New(store, clk, vaultCreator, logger)
	playerService := player.New(store, clk, logger)
	gameController := game.NewController(store, minter, clk, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		Minter:         minter,
		AuthService:    authService,
		VaultService:   vaultService,
		PlayerService:  playerService,
		GameController: gameController,
	}
}
