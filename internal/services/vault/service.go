package vault

import (
	"context"
	"log/slog"

	"github.com/pixelana/pixelana-go/internal/dependencies/clock"
	"github.com/pixelana/pixelana-go/internal/model"
	"github.com/pixelana/pixelana-go/internal/storage"
)

// Service manages the global vault record
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	creator model.Identity
	logger  *slog.Logger
}

// New creates a new vault service. Only creator may initialize the
// vault.
func New(storage storage.Storage, clock clock.Clock, creator model.Identity, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		creator: creator,
		logger:  logger,
	}
}

// Initialize creates the vault record. The record's existence is the
// lock: a second attempt fails with ErrVaultExists.
func (s *Service) Initialize(ctx context.Context, caller model.Identity) (*model.Vault, error) {
	if caller != s.creator {
		return nil, model.ErrNotCreator
	}

	exists, err := s.storage.VaultExists(ctx)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrVaultExists
	}

	now := s.clock.Now()
	vault := &model.Vault{
		Creator:   caller,
		Balance:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.SaveVault(ctx, vault); err != nil {
		return nil, err
	}

	s.logger.Info("vault initialized",
		slog.String("creator", string(caller)),
		slog.String("address", string(vault.Address())),
	)

	return vault, nil
}

// Get retrieves the vault record
func (s *Service) Get(ctx context.Context) (*model.Vault, error) {
	return s.storage.GetVault(ctx)
}

// Interface for dependency injection
type ServiceInterface interface {
	Initialize(ctx context.Context, caller model.Identity) (*model.Vault, error)
	Get(ctx context.Context) (*model.Vault, error)
}

var _ ServiceInterface = (*Service)(nil)
