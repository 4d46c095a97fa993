package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/pixelana/pixelana-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
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
		Balance:   42,
		CreatedAt: time.Now().UTC(),
	}

	s.Require().NoError(s.storage.SaveVault(s.ctx, vault))

	exists, err := s.storage.VaultExists(s.ctx)
	s.Require().NoError(err)
	s.True(exists)

	retrieved, err := s.storage.GetVault(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.Identity("creator"), retrieved.Creator)
	s.Equal(uint64(42), retrieved.Balance)
}

// Player tests

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestSaveAndGetPlayer() {
	addr := (&model.Game{ID: "ABCD1234"}).Address()
	player := &model.Player{
		Owner:   "alice",
		Balance: 10,
		Games:   3,
		Current: &addr,
	}

	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	retrieved, err := s.storage.GetPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.Identity("alice"), retrieved.Owner)
	s.Equal(uint64(10), retrieved.Balance)
	s.Equal(uint64(3), retrieved.Games)
	s.Require().NotNil(retrieved.Current)
	s.Equal(addr, *retrieved.Current)
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
	idx := uint32(0)
	game := &model.Game{
		ID:           "ABCD1234",
		Host:         "host",
		Status:       model.StatusWaitForMinting,
		Config:       model.GameConfig{Capacity: 3, MinParticipants: 2},
		Participants: []model.Identity{"alice", "bob"},
		Story:        "Once upon a time...",
		Drawings: []model.Drawing{
			{Participant: "alice", Ref: "drawing_1"},
			{Participant: "bob", Ref: "drawing_2"},
		},
		WinnerIndex: &idx,
	}

	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	retrieved, err := s.storage.GetGame(s.ctx, "ABCD1234")
	s.Require().NoError(err)
	s.Equal(model.StatusWaitForMinting, retrieved.Status)
	s.Equal("Once upon a time...", retrieved.Story)
	s.Len(retrieved.Drawings, 2)
	s.Require().NotNil(retrieved.WinnerIndex)
	s.Equal(uint32(0), *retrieved.WinnerIndex)
}

func (s *StorageSuite) TestGameExists() {
	exists, err := s.storage.GameExists(s.ctx, "ABCD1234")
	s.Require().NoError(err)
	s.False(exists)

	game := &model.Game{ID: "ABCD1234", Host: "host"}
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	exists, err = s.storage.GameExists(s.ctx, "ABCD1234")
	s.Require().NoError(err)
	s.True(exists)
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
