package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds server configuration loaded from the environment
type Config struct {
	// Host and port the HTTP server listens on
	Host string `env:"PIXELANA_HOST" envDefault:""`
	Port int    `env:"PIXELANA_PORT" envDefault:"8080"`

	// StorageType selects the storage backend: memory, redis, or sqlite
	StorageType string `env:"PIXELANA_STORAGE" envDefault:"memory"`
	RedisURL    string `env:"PIXELANA_REDIS_URL" envDefault:"redis://localhost:6379"`
	SQLitePath  string `env:"PIXELANA_SQLITE_PATH" envDefault:"pixelana.db"`

	// VaultCreator is the identity allowed to initialize the vault
	VaultCreator string `env:"PIXELANA_VAULT_CREATOR"`

	// MintServiceURL is the base URL of the minting collaborator.
	// Empty selects the local minter, which fabricates receipts.
	MintServiceURL string `env:"PIXELANA_MINT_URL"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
