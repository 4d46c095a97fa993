package storage

import (
	"context"

	"github.com/pixelana/pixelana-go/internal/model"
)

// Storage defines the interface for ledger record persistence.
//
// Every method is an atomic commit: concurrent callers never observe a
// record half-written, and the multi-record methods write all of their
// records or none of them.
type Storage interface {
	// Vault operations
	SaveVault(ctx context.Context, vault *model.Vault) error
	GetVault(ctx context.Context) (*model.Vault, error)
	VaultExists(ctx context.Context) (bool, error)

	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, owner model.Identity) (*model.Player, error)

	// Wallet operations
	SaveWallet(ctx context.Context, wallet *model.Wallet) error
	GetWallet(ctx context.Context, identity model.Identity) (*model.Wallet, error)

	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	GameExists(ctx context.Context, id model.GameID) (bool, error)

	// SaveDeposit commits a deposit's player and vault updates together.
	SaveDeposit(ctx context.Context, player *model.Player, vault *model.Vault) error

	// SaveGameAndPlayers commits a game update together with the player
	// records it touched (join, creation, completion cleanup).
	SaveGameAndPlayers(ctx context.Context, game *model.Game, players ...*model.Player) error
}
