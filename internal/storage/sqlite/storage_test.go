package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/pixelana/pixelana-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	store, err := Open(":memory:")
	s.Require().NoError(err)
	s.storage = store
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
}

// Vault tests

func (s *StorageSuite) TestVaultNotFoundInitially() {
	exists, err := s.storage.VaultExists(s.ctx)
	s.Require().NoError(err)
	s.False(exists)

	_, err = s.storage.GetVault(s.ctx)
	s.ErrorIs(err, model.ErrVaultNotFound)
}

func (s *StorageSuite) TestSaveAndGetVault() {
	vault := &model.Vault{
		Creator:   "creator",
		Balance:   7,
		CreatedAt: time.Now().UTC(),
	}

	s.Require().NoError(s.storage.SaveVault(s.ctx, vault))

	retrieved, err := s.storage.GetVault(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.Identity("creator"), retrieved.Creator)
	s.Equal(uint64(7), retrieved.Balance)
}

func (s *StorageSuite) TestSaveVaultUpserts() {
	vault := &model.Vault{Creator: "creator", Balance: 1}
	s.Require().NoError(s.storage.SaveVault(s.ctx, vault))

	vault.Balance = 2
	s.Require().NoError(s.storage.SaveVault(s.ctx, vault))

	retrieved, err := s.storage.GetVault(s.ctx)
	s.Require().NoError(err)
	s.Equal(uint64(2), retrieved.Balance)
}

// Player tests

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		Owner:   "alice",
		Balance: 5,
		Games:   1,
	}

	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	retrieved, err := s.storage.GetPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.Identity("alice"), retrieved.Owner)
	s.Equal(uint64(5), retrieved.Balance)
	s.Equal(uint64(1), retrieved.Games)
}

// Wallet tests

func (s *StorageSuite) TestSaveAndGetWallet() {
	wallet := &model.Wallet{
		Identity:       "alice",
		PassphraseHash: "hash",
		CreatedAt:      time.Now().UTC(),
	}

	s.Require().NoError(s.storage.SaveWallet(s.ctx, wallet))

	retrieved, err := s.storage.GetWallet(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("hash", retrieved.PassphraseHash)

	_, err = s.storage.GetWallet(s.ctx, "bob")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Game tests

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "NOPE")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestSaveAndGetGame() {
	game := &model.Game{
		ID:           "ABCD1234",
		Host:         "host",
		Status:       model.StatusWaitingForDrawings,
		Config:       model.DefaultGameConfig(),
		Participants: []model.Identity{"alice", "bob"},
		Story:        "Once upon a time...",
		Drawings:     []model.Drawing{{Participant: "alice", Ref: "drawing_1"}},
	}

	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	exists, err := s.storage.GameExists(s.ctx, "ABCD1234")
	s.Require().NoError(err)
	s.True(exists)

	retrieved, err := s.storage.GetGame(s.ctx, "ABCD1234")
	s.Require().NoError(err)
	s.Equal(model.StatusWaitingForDrawings, retrieved.Status)
	s.Equal("Once upon a time...", retrieved.Story)
	s.Len(retrieved.Drawings, 1)
}

// Multi-record commits

func (s *StorageSuite) TestSaveDeposit() {
	player := &model.Player{Owner: "alice", Balance: 10000000}
	vault := &model.Vault{Creator: "creator", Balance: 10000000}

	s.Require().NoError(s.storage.SaveDeposit(s.ctx, player, vault))

	gotPlayer, err := s.storage.GetPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(uint64(10000000), gotPlayer.Balance)

	gotVault, err := s.storage.GetVault(s.ctx)
	s.Require().NoError(err)
	s.Equal(uint64(10000000), gotVault.Balance)
}

func (s *StorageSuite) TestSaveGameAndPlayers() {
	game := &model.Game{ID: "ABCD1234", Host: "host", Status: model.StatusCompleted}
	host := &model.Player{Owner: "host", Games: 1}
	alice := &model.Player{Owner: "alice", Games: 1}

	s.Require().NoError(s.storage.SaveGameAndPlayers(s.ctx, game, host, alice))

	gotGame, err := s.storage.GetGame(s.ctx, "ABCD1234")
	s.Require().NoError(err)
	s.Equal(model.StatusCompleted, gotGame.Status)

	gotHost, err := s.storage.GetPlayer(s.ctx, "host")
	s.Require().NoError(err)
	s.Equal(uint64(1), gotHost.Games)

	gotAlice, err := s.storage.GetPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(uint64(1), gotAlice.Games)
}
