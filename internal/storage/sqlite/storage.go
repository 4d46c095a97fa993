package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/pixelana/pixelana-go/internal/model"
	"github.com/pixelana/pixelana-go/internal/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS vault (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	data TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS players (
	owner TEXT PRIMARY KEY,
	data TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS wallets (
	identity TEXT PRIMARY KEY,
	data TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS games (
	id TEXT PRIMARY KEY,
	data TEXT NOT NULL
);
`

// Storage is a SQLite-backed implementation of the storage interface.
// Records are JSON documents keyed by their natural identifier;
// multi-record commits run inside a single SQL transaction.
type Storage struct {
	db *sql.DB
}

// Open opens a SQLite storage at the given path. Use ":memory:" for an
// ephemeral database in tests.
func Open(path string) (*Storage, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000"
	if path == ":memory:" {
		dsn = path
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close closes the underlying database
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Vault operations

func (s *Storage) SaveVault(ctx context.Context, vault *model.Vault) error {
	data, err := json.Marshal(vault)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO vault (id, data) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data`, string(data))
	return err
}

func (s *Storage) GetVault(ctx context.Context) (*model.Vault, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM vault WHERE id = 1`).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrVaultNotFound
	}
	if err != nil {
		return nil, err
	}

	var vault model.Vault
	if err := json.Unmarshal([]byte(data), &vault); err != nil {
		return nil, err
	}
	return &vault, nil
}

func (s *Storage) VaultExists(ctx context.Context) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vault`).Scan(&n); err != nil {
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
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO players (owner, data) VALUES (?, ?)
		 ON CONFLICT(owner) DO UPDATE SET data = excluded.data`,
		string(player.Owner), string(data))
	return err
}

func (s *Storage) GetPlayer(ctx context.Context, owner model.Identity) (*model.Player, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM players WHERE owner = ?`, string(owner)).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrPlayerNotFound
	}
	if err != nil {
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal([]byte(data), &player); err != nil {
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
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO wallets (identity, data) VALUES (?, ?)
		 ON CONFLICT(identity) DO UPDATE SET data = excluded.data`,
		string(wallet.Identity), string(data))
	return err
}

func (s *Storage) GetWallet(ctx context.Context, identity model.Identity) (*model.Wallet, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM wallets WHERE identity = ?`, string(identity)).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrPlayerNotFound
	}
	if err != nil {
		return nil, err
	}

	var wallet model.Wallet
	if err := json.Unmarshal([]byte(data), &wallet); err != nil {
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
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO games (id, data) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data`,
		string(game.ID), string(data))
	return err
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM games WHERE id = ?`, string(id)).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrGameNotFound
	}
	if err != nil {
		return nil, err
	}

	var game model.Game
	if err := json.Unmarshal([]byte(data), &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *Storage) GameExists(ctx context.Context, id model.GameID) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM games WHERE id = ?`, string(id)).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Multi-record commits

func (s *Storage) SaveDeposit(ctx context.Context, player *model.Player, vault *model.Vault) error {
	playerData, err := json.Marshal(player)
	if err != nil {
		return err
	}
	vaultData, err := json.Marshal(vault)
	if err != nil {
		return err
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO players (owner, data) VALUES (?, ?)
			 ON CONFLICT(owner) DO UPDATE SET data = excluded.data`,
			string(player.Owner), string(playerData)); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO vault (id, data) VALUES (1, ?)
			 ON CONFLICT(id) DO UPDATE SET data = excluded.data`, string(vaultData))
		return err
	})
}

func (s *Storage) SaveGameAndPlayers(ctx context.Context, game *model.Game, players ...*model.Player) error {
	gameData, err := json.Marshal(game)
	if err != nil {
		return err
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO games (id, data) VALUES (?, ?)
			 ON CONFLICT(id) DO UPDATE SET data = excluded.data`,
			string(game.ID), string(gameData)); err != nil {
			return err
		}
		for _, p := range players {
			data, err := json.Marshal(p)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO players (owner, data) VALUES (?, ?)
				 ON CONFLICT(owner) DO UPDATE SET data = excluded.data`,
				string(p.Owner), string(data)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Storage) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
