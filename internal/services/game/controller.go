package game

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pixelana/pixelana-go/internal/dependencies/clock"
	"github.com/pixelana/pixelana-go/internal/mint"
	"github.com/pixelana/pixelana-go/internal/model"
	"github.com/pixelana/pixelana-go/internal/storage"
)

// Controller drives the game phase machine. Every operation loads the
// current records, checks who is acting, checks what phase the game is
// in, then commits the mutation as one unit. Authorization failures
// and phase failures are distinct error kinds.
type Controller struct {
	storage storage.Storage
	minter  mint.Minter
	clock   clock.Clock
	logger  *slog.Logger
}

// NewController creates a new game controller
func NewController(storage storage.Storage, minter mint.Minter, clock clock.Clock, logger *slog.Logger) *Controller {
	return &Controller{
		storage: storage,
		minter:  minter,
		clock:   clock,
		logger:  logger,
	}
}

// Initialize creates a new game with the caller as host. The host's
// player record must exist and not be in another game; its current
// game reference is set in the same commit that creates the game.
func (c *Controller) Initialize(ctx context.Context, id model.GameID, host model.Identity, cfg model.GameConfig) (*model.Game, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if cfg == (model.GameConfig{}) {
		cfg = model.DefaultGameConfig()
	}
	if cfg.Capacity < 2 {
		return nil, model.ErrInvalidCapacity
	}
	if cfg.MinParticipants < 2 || cfg.MinParticipants > cfg.Capacity {
		return nil, model.ErrInvalidCapacity
	}

	exists, err := c.storage.GameExists(ctx, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrGameExists
	}

	hostPlayer, err := c.storage.GetPlayer(ctx, host)
	if err != nil {
		return nil, err
	}
	if hostPlayer.InGame() {
		return nil, model.ErrAlreadyInGame
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:           id,
		Host:         host,
		Config:       cfg,
		Status:       model.StatusWaitingForParticipants,
		Participants: []model.Identity{},
		Drawings:     []model.Drawing{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	addr := game.Address()
	hostPlayer.Current = &addr
	hostPlayer.UpdatedAt = now

	if err := c.storage.SaveGameAndPlayers(ctx, game, hostPlayer); err != nil {
		return nil, err
	}

	c.logger.Info("game initialized",
		slog.String("game_id", string(id)),
		slog.String("host", string(host)),
		slog.Int("capacity", cfg.Capacity),
	)

	return game, nil
}

// Join adds the caller to the game's participant list
func (c *Controller) Join(ctx context.Context, id model.GameID, caller model.Identity) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if caller == game.Host {
		return nil, model.ErrAlreadyJoined
	}
	if game.HasParticipant(caller) {
		return nil, model.ErrAlreadyJoined
	}
	if err := requirePhase(game, model.StatusWaitingForParticipants); err != nil {
		return nil, err
	}
	if len(game.Participants) >= game.Config.Capacity {
		return nil, model.ErrGameFull
	}

	player, err := c.storage.GetPlayer(ctx, caller)
	if err != nil {
		return nil, err
	}
	if player.InGame() {
		return nil, model.ErrAlreadyInGame
	}

	now := c.clock.Now()
	game.Participants = append(game.Participants, caller)
	game.UpdatedAt = now

	addr := game.Address()
	player.Current = &addr
	player.UpdatedAt = now

	// Reaching capacity does not advance the phase; the host starts
	// the game explicitly.
	if err := c.storage.SaveGameAndPlayers(ctx, game, player); err != nil {
		return nil, err
	}

	c.logger.Info("participant joined",
		slog.String("game_id", string(id)),
		slog.String("participant", string(caller)),
		slog.Int("participants", len(game.Participants)),
	)

	return game, nil
}

// Start advances the game from gathering participants to the story phase
func (c *Controller) Start(ctx context.Context, id model.GameID, caller model.Identity) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if caller != game.Host {
		return nil, model.ErrNotHost
	}
	if err := requirePhase(game, model.StatusWaitingForParticipants); err != nil {
		return nil, err
	}
	if len(game.Participants) < game.Config.MinParticipants {
		return nil, model.ErrNotEnoughPlayers
	}

	game.Status = model.StatusWaitingForStory
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game started", slog.String("game_id", string(id)))

	return game, nil
}

// SubmitStory records the host's story and opens the drawing phase
func (c *Controller) SubmitStory(ctx context.Context, id model.GameID, caller model.Identity, story string) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if caller != game.Host {
		return nil, model.ErrNotHost
	}
	if err := requirePhase(game, model.StatusWaitingForStory); err != nil {
		return nil, err
	}
	if strings.TrimSpace(story) == "" {
		return nil, model.ErrEmptyStory
	}

	game.Story = story
	game.Status = model.StatusWaitingForDrawings
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("story submitted", slog.String("game_id", string(id)))

	return game, nil
}

// SubmitDrawing records a participant's drawing reference. When the
// last participant submits, the game advances to winner selection.
func (c *Controller) SubmitDrawing(ctx context.Context, id model.GameID, caller model.Identity, ref string) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if !game.HasParticipant(caller) {
		return nil, model.ErrNotParticipant
	}
	if err := requirePhase(game, model.StatusWaitingForDrawings); err != nil {
		return nil, err
	}
	if game.HasDrawingFrom(caller) {
		return nil, model.ErrAlreadySubmitted
	}
	if strings.TrimSpace(ref) == "" {
		return nil, model.ErrEmptyDrawing
	}

	game.Drawings = append(game.Drawings, model.Drawing{
		Participant: caller,
		Ref:         ref,
	})
	if game.AllDrawingsIn() {
		game.Status = model.StatusSelectingWinner
	}
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("drawing submitted",
		slog.String("game_id", string(id)),
		slog.String("participant", string(caller)),
		slog.Int("drawings", len(game.Drawings)),
	)

	return game, nil
}

// SelectWinner records the host's pick and moves to the minting phase
func (c *Controller) SelectWinner(ctx context.Context, id model.GameID, caller model.Identity, index uint32) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if caller != game.Host {
		return nil, model.ErrNotHost
	}
	if err := requirePhase(game, model.StatusSelectingWinner); err != nil {
		return nil, err
	}
	if int(index) >= len(game.Drawings) {
		return nil, model.ErrInvalidWinnerIndex
	}

	game.WinnerIndex = &index
	game.Status = model.StatusWaitForMinting
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("winner selected",
		slog.String("game_id", string(id)),
		slog.String("winner", string(game.Drawings[index].Participant)),
	)

	return game, nil
}

// MintNFT invokes the minting collaborator for the winning drawing and
// completes the game. On collaborator failure the game stays in the
// minting phase and the operation can be retried. On success the final
// phase write, the game-count increments, and the current-game
// clearing for every member commit together.
func (c *Controller) MintNFT(ctx context.Context, id model.GameID, caller model.Identity) (*model.Game, *mint.Receipt, error) {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if caller != game.Host {
		return nil, nil, model.ErrNotHost
	}
	if err := requirePhase(game, model.StatusWaitForMinting); err != nil {
		return nil, nil, err
	}

	winner := game.Winner()
	receipt, err := c.minter.Mint(ctx, mint.Request{
		GameID:     game.ID,
		Winner:     winner.Participant,
		DrawingRef: winner.Ref,
	})
	if err != nil {
		c.logger.Warn("mint failed",
			slog.String("game_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, nil, err
	}

	now := c.clock.Now()
	game.Status = model.StatusCompleted
	game.UpdatedAt = now

	addr := game.Address()
	members := make([]*model.Player, 0, len(game.Participants)+1)
	for _, identity := range game.Everyone() {
		p, err := c.storage.GetPlayer(ctx, identity)
		if err != nil {
			return nil, nil, err
		}
		if p.Current != nil && *p.Current == addr {
			p.Current = nil
		}
		p.Games++
		p.UpdatedAt = now
		members = append(members, p)
	}

	if err := c.storage.SaveGameAndPlayers(ctx, game, members...); err != nil {
		return nil, nil, err
	}

	c.logger.Info("game completed",
		slog.String("game_id", string(id)),
		slog.String("winner", string(winner.Participant)),
		slog.String("asset_ref", receipt.AssetRef),
	)

	return game, receipt, nil
}

// Get retrieves a game by id
func (c *Controller) Get(ctx context.Context, id model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, id)
}

// requirePhase rejects the operation unless the game is in want.
// Completed games report a dedicated error since no further mutation
// is ever accepted.
func requirePhase(game *model.Game, want model.GameStatus) error {
	if game.Status == want {
		return nil
	}
	if game.Status == model.StatusCompleted {
		return model.ErrGameCompleted
	}
	return model.ErrInvalidPhase
}

// Interface for dependency injection
type ControllerInterface interface {
	Initialize(ctx context.Context, id model.GameID, host model.Identity, cfg model.GameConfig) (*model.Game, error)
	Join(ctx context.Context, id model.GameID, caller model.Identity) (*model.Game, error)
	Start(ctx context.Context, id model.GameID, caller model.Identity) (*model.Game, error)
	SubmitStory(ctx context.Context, id model.GameID, caller model.Identity, story string) (*model.Game, error)
	SubmitDrawing(ctx context.Context, id model.GameID, caller model.Identity, ref string) (*model.Game, error)
	SelectWinner(ctx context.Context, id model.GameID, caller model.Identity, index uint32) (*model.Game, error)
	MintNFT(ctx context.Context, id model.GameID, caller model.Identity) (*model.Game, *mint.Receipt, error)
	Get(ctx context.Context, id model.GameID) (*model.Game, error)
}

var _ ControllerInterface = (*Controller)(nil)
