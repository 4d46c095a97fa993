package model

import (
	"time"

	"github.com/pixelana/pixelana-go/internal/keys"
)

// Identity is the public identity of a participant. Every operation is
// authorized by exactly one identity, and records never change owner.
type Identity string

// Player is the per-identity ledger record. It is created lazily on the
// first initialize call and never deleted.
type Player struct {
	Owner   Identity      // immutable after creation
	Balance uint64        // cumulative deposited units
	Games   uint64        // completed games, monotonically non-decreasing
	Current *keys.Address // address of the game the player is in, nil otherwise

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Address derives the record address for this player.
func (p *Player) Address() keys.Address {
	return keys.Player(string(p.Owner))
}

// InGame reports whether the player is currently in a game.
func (p *Player) InGame() bool {
	return p.Current != nil
}
