package model

import "errors"

// Common errors used across the application. Authorization failures
// (ErrNotCreator, ErrNotHost, ErrNotParticipant) are distinct from
// phase failures (ErrInvalidPhase) so callers can tell wrong-actor
// apart from wrong-time.
var (
	// Vault errors
	ErrVaultExists   = errors.New("vault already initialized")
	ErrVaultNotFound = errors.New("vault not found")
	ErrNotCreator    = errors.New("identity is not the vault creator")

	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrInvalidAmount  = errors.New("deposit amount must be positive")
	ErrAlreadyInGame  = errors.New("player is already in a game")

	// Game errors
	ErrGameExists         = errors.New("game already exists")
	ErrGameNotFound       = errors.New("game not found")
	ErrNotHost            = errors.New("identity is not the game host")
	ErrNotParticipant     = errors.New("identity is not a participant")
	ErrInvalidPhase       = errors.New("operation not valid in current phase")
	ErrGameFull           = errors.New("game is at capacity")
	ErrAlreadyJoined      = errors.New("identity already joined this game")
	ErrAlreadySubmitted   = errors.New("identity already submitted a drawing")
	ErrNotEnoughPlayers   = errors.New("not enough participants to start")
	ErrInvalidGameID      = errors.New("invalid game id")
	ErrInvalidCapacity    = errors.New("capacity must be at least 2")
	ErrEmptyStory         = errors.New("story must not be empty")
	ErrEmptyDrawing       = errors.New("drawing reference must not be empty")
	ErrInvalidWinnerIndex = errors.New("winner index out of range")
	ErrGameCompleted      = errors.New("game is completed")

	// Minting errors
	ErrMintFailed = errors.New("minting collaborator failed")
)
