package memory

import (
	"context"
	"sync"

	"github.com/pixelana/pixelana-go/internal/model"
	"github.com/pixelana/pixelana-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// A single mutex guards all record kinds, so the multi-record commits
// are trivially atomic.
type Storage struct {
	mu sync.RWMutex

	vault   *model.Vault
	players map[model.Identity]*model.Player
	wallets map[model.Identity]*model.Wallet
	games   map[model.GameID]*model.Game
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players: make(map[model.Identity]*model.Player),
		wallets: make(map[model.Identity]*model.Wallet),
		games:   make(map[model.GameID]*model.Game),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Vault operations

func (s *Storage) SaveVault(ctx context.Context, vault *model.Vault) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := *vault
	s.vault = &v
	return nil
}

func (s *Storage) GetVault(ctx context.Context) (*model.Vault, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.vault == nil {
		return nil, model.ErrVaultNotFound
	}
	v := *s.vault
	return &v, nil
}

func (s *Storage) VaultExists(ctx context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vault != nil, nil
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.Owner] = clonePlayer(player)
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, owner model.Identity) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[owner]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return clonePlayer(player), nil
}

// Wallet operations

func (s *Storage) SaveWallet(ctx context.Context, wallet *model.Wallet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := *wallet
	s.wallets[wallet.Identity] = &w
	return nil
}

func (s *Storage) GetWallet(ctx context.Context, identity model.Identity) (*model.Wallet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wallet, ok := s.wallets[identity]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	w := *wallet
	return &w, nil
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = cloneGame(game)
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return cloneGame(game), nil
}

func (s *Storage) GameExists(ctx context.Context, id model.GameID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.games[id]
	return ok, nil
}

// Multi-record commits

func (s *Storage) SaveDeposit(ctx context.Context, player *model.Player, vault *model.Vault) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.Owner] = clonePlayer(player)
	v := *vault
	s.vault = &v
	return nil
}

func (s *Storage) SaveGameAndPlayers(ctx context.Context, game *model.Game, players ...*model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = cloneGame(game)
	for _, p := range players {
		s.players[p.Owner] = clonePlayer(p)
	}
	return nil
}

// Records are cloned on the way in and out so callers can't mutate
// stored state outside a commit.

func clonePlayer(p *model.Player) *model.Player {
	c := *p
	if p.Current != nil {
		addr := *p.Current
		c.Current = &addr
	}
	return &c
}

func cloneGame(g *model.Game) *model.Game {
	c := *g
	c.Participants = make([]model.Identity, len(g.Participants))
	copy(c.Participants, g.Participants)
	c.Drawings = make([]model.Drawing, len(g.Drawings))
	copy(c.Drawings, g.Drawings)
	if g.WinnerIndex != nil {
		idx := *g.WinnerIndex
		c.WinnerIndex = &idx
	}
	return &c
}
