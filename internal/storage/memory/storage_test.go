package memory

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
	s.storage = New()
	s.ctx = context.Background()
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
		Balance:   100,
		CreatedAt: time.Now(),
	}

	s.Require().NoError(s.storage.SaveVault(s.ctx, vault))

	exists, err := s.storage.VaultExists(s.ctx)
	s.Require().NoError(err)
	s.True(exists)

	retrieved, err := s.storage.GetVault(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.Identity("creator"), retrieved.Creator)
	s.Equal(uint64(100), retrieved.Balance)
}

// Player tests

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		Owner:   "alice",
		Balance: 50,
		Games:   2,
	}

	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	retrieved, err := s.storage.GetPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.Identity("alice"), retrieved.Owner)
	s.Equal(uint64(50), retrieved.Balance)
	s.Equal(uint64(2), retrieved.Games)
	s.Nil(retrieved.Current)
}

func (s *StorageSuite) TestStoredPlayerIsIsolatedFromCaller() {
	player := &model.Player{Owner: "alice", Balance: 50}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	// Mutating the caller's copy must not affect stored state.
	player.Balance = 999

	retrieved, err := s.storage.GetPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(uint64(50), retrieved.Balance)
}

// Wallet tests

func (s *StorageSuite) TestSaveAndGetWallet() {
	wallet := &model.Wallet{
		Identity:       "alice",
		PassphraseHash: "hash",
		CreatedAt:      time.Now(),
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
		Status:       model.StatusWaitingForParticipants,
		Config:       model.DefaultGameConfig(),
		Participants: []model.Identity{"alice"},
		Drawings:     []model.Drawing{},
	}

	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	exists, err := s.storage.GameExists(s.ctx, "ABCD1234")
	s.Require().NoError(err)
	s.True(exists)

	retrieved, err := s.storage.GetGame(s.ctx, "ABCD1234")
	s.Require().NoError(err)
	s.Equal(model.Identity("host"), retrieved.Host)
	s.Equal(model.StatusWaitingForParticipants, retrieved.Status)
	s.Equal([]model.Identity{"alice"}, retrieved.Participants)
}

func (s *StorageSuite) TestStoredGameIsIsolatedFromCaller() {
	game := &model.Game{
		ID:           "ABCD1234",
		Host:         "host",
		Participants: []model.Identity{"alice"},
	}
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	game.Participants = append(game.Participants, "bob")

	retrieved, err := s.storage.GetGame(s.ctx, "ABCD1234")
	s.Require().NoError(err)
	s.Len(retrieved.Participants, 1)
}

// Multi-record commits

func (s *StorageSuite) TestSaveDeposit() {
	player := &model.Player{Owner: "alice", Balance: 100}
	vault := &model.Vault{Creator: "creator", Balance: 100}

	s.Require().NoError(s.storage.SaveDeposit(s.ctx, player, vault))

	gotPlayer, err := s.storage.GetPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(uint64(100), gotPlayer.Balance)

	gotVault, err := s.storage.GetVault(s.ctx)
	s.Require().NoError(err)
	s.Equal(uint64(100), gotVault.Balance)
}

func (s *StorageSuite) TestSaveGameAndPlayers() {
	addr := (&model.Game{ID: "ABCD1234"}).Address()
	game := &model.Game{
		ID:     "ABCD1234",
		Host:   "host",
		Status: model.StatusCompleted,
	}
	host := &model.Player{Owner: "host", Games: 1}
	alice := &model.Player{Owner: "alice", Games: 1, Current: &addr}

	s.Require().NoError(s.storage.SaveGameAndPlayers(s.ctx, game, host, alice))

	gotGame, err := s.storage.GetGame(s.ctx, "ABCD1234")
	s.Require().NoError(err)
	s.Equal(model.StatusCompleted, gotGame.Status)

	gotHost, err := s.storage.GetPlayer(s.ctx, "host")
	s.Require().NoError(err)
	s.Equal(uint64(1), gotHost.Games)

	gotAlice, err := s.storage.GetPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().NotNil(gotAlice.Current)
	s.Equal(addr, *gotAlice.Current)
}
