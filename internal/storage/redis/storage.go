package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pixelana/pixelana-go/internal/model"
	"github.com/pixelana/pixelana-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Records are stored as JSON values and never expire: the ledger keeps
// vault, player, and game records for history.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Vault operations

func (s *Storage) SaveVault(ctx context.Context, vault *model.Vault) error {
	data, err := json.Marshal(vault)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, vaultKey(), data, 0).Err()
}

func (s *Storage) GetVault(ctx context.Context) (*model.Vault, error) {
	data, err := s.client.Get(ctx, vaultKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrVaultNotFound
		}
		return nil, err
	}

	var vault model.Vault
	if err := json.Unmarshal(data, &vault); err != nil {
		return nil, err
	}
	return &vault, nil
}

func (s *Storage) VaultExists(ctx context.Context) (bool, error) {
	n, err := s.client.Exists(ctx, vaultKey()).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, playerKey(player.Owner), data, 0).Err()
}

func (s *Storage) GetPlayer(ctx context.Context, owner model.Identity) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(owner)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

// Wallet operations

func (s *Storage) SaveWallet(ctx context.Context, wallet *model.Wallet) error {
	data, err := json.Marshal(wallet)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, walletKey(wallet.Identity), data, 0).Err()
}

func (s *Storage) GetWallet(ctx context.Context, identity model.Identity) (*model.Wallet, error) {
	data, err := s.client.Get(ctx, walletKey(identity)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var wallet model.Wallet
	if err := json.Unmarshal(data, &wallet); err != nil {
		return nil, err
	}
	return &wallet, nil
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, gameKey(game.ID), data, 0).Err()
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	data, err := s.client.Get(ctx, gameKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	var game model.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *Storage) GameExists(ctx context.Context, id model.GameID) (bool, error) {
	n, err := s.client.Exists(ctx, gameKey(id)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Multi-record commits
//
// MULTI/EXEC via TxPipelined makes each commit atomic: other clients
// see either all of the records updated or none of them.

func (s *Storage) SaveDeposit(ctx context.Context, player *model.Player, vault *model.Vault) error {
	playerData, err := json.Marshal(player)
	if err != nil {
		return err
	}
	vaultData, err := json.Marshal(vault)
	if err != nil {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, playerKey(player.Owner), playerData, 0)
		pipe.Set(ctx, vaultKey(), vaultData, 0)
		return nil
	})
	return err
}

func (s *Storage) SaveGameAndPlayers(ctx context.Context, game *model.Game, players ...*model.Player) error {
	gameData, err := json.Marshal(game)
	if err != nil {
		return err
	}

	playerData := make(map[model.Identity][]byte, len(players))
	for _, p := range players {
		data, err := json.Marshal(p)
		if err != nil {
			return err
		}
		playerData[p.Owner] = data
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, gameKey(game.ID), gameData, 0)
		for owner, data := range playerData {
			pipe.Set(ctx, playerKey(owner), data, 0)
		}
		return nil
	})
	return err
}
