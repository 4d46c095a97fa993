package player

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pixelana/pixelana-go/internal/dependencies/clock"
	"github.com/pixelana/pixelana-go/internal/model"
	"github.com/pixelana/pixelana-go/internal/storage"
)

// Service manages player record lifecycle and vault deposits
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new player service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Initialize creates the player record for owner. The operation is
// idempotent: if the record already exists it is returned untouched.
func (s *Service) Initialize(ctx context.Context, owner model.Identity) (*model.Player, error) {
	existing, err := s.storage.GetPlayer(ctx, owner)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, err
	}

	now := s.clock.Now()
	player := &model.Player{
		Owner:     owner,
		Balance:   0,
		Games:     0,
		Current:   nil,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player initialized",
		slog.String("owner", string(owner)),
		slog.String("address", string(player.Address())),
	)

	return player, nil
}

// Deposit moves amount into the vault on behalf of depositor. The
// player and vault balances change together in one commit; no partial
// update is ever observable.
func (s *Service) Deposit(ctx context.Context, depositor model.Identity, amount uint64) (*model.Player, error) {
	if amount == 0 {
		return nil, model.ErrInvalidAmount
	}

	player, err := s.storage.GetPlayer(ctx, depositor)
	if err != nil {
		return nil, err
	}

	vault, err := s.storage.GetVault(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	player.Balance += amount
	player.UpdatedAt = now
	vault.Balance += amount
	vault.UpdatedAt = now

	if err := s.storage.SaveDeposit(ctx, player, vault); err != nil {
		return nil, err
	}

	s.logger.Info("deposit",
		slog.String("depositor", string(depositor)),
		slog.Uint64("amount", amount),
		slog.Uint64("vault_balance", vault.Balance),
	)

	return player, nil
}

// Get retrieves a player record
func (s *Service) Get(ctx context.Context, owner model.Identity) (*model.Player, error) {
	return s.storage.GetPlayer(ctx, owner)
}

// Interface for dependency injection
type ServiceInterface interface {
	Initialize(ctx context.Context, owner model.Identity) (*model.Player, error)
	Deposit(ctx context.Context, depositor model.Identity, amount uint64) (*model.Player, error)
	Get(ctx context.Context, owner model.Identity) (*model.Player, error)
}

var _ ServiceInterface = (*Service)(nil)
