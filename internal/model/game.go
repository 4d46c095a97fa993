package model

import (
	"time"

	"github.com/pixelana/pixelana-go/internal/keys"
)

// GameID is the caller-supplied identifier a game's address is derived
// from. It must be unique per active game.
type GameID string

const (
	// MaxGameIDLength bounds the derivation key size
	MaxGameIDLength = 32
	// GameIDAlphabet is the set of characters allowed in game ids
	GameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Validate checks the id against the derivation scheme's constraints
func (id GameID) Validate() error {
	if len(id) == 0 || len(id) > MaxGameIDLength {
		return ErrInvalidGameID
	}
	for _, c := range id {
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return ErrInvalidGameID
		}
	}
	return nil
}

// GameStatus represents the current phase of a game
type GameStatus string

const (
	StatusWaitingForParticipants GameStatus = "waiting_for_participants"
	StatusWaitingForStory        GameStatus = "waiting_for_story"
	StatusWaitingForDrawings     GameStatus = "waiting_for_drawings"
	StatusSelectingWinner        GameStatus = "selecting_winner"
	StatusWaitForMinting         GameStatus = "wait_for_minting"
	StatusCompleted              GameStatus = "completed"
)

// statusRank orders phases so transitions can be checked as strictly
// forward. A status never regresses and no phase is re-entered.
var statusRank = map[GameStatus]int{
	StatusWaitingForParticipants: 0,
	StatusWaitingForStory:        1,
	StatusWaitingForDrawings:     2,
	StatusSelectingWinner:        3,
	StatusWaitForMinting:         4,
	StatusCompleted:              5,
}

// Before reports whether s is an earlier phase than other.
func (s GameStatus) Before(other GameStatus) bool {
	return statusRank[s] < statusRank[other]
}

// GameConfig holds per-game settings fixed at creation
type GameConfig struct {
	Capacity        int // max joined participants, host excluded
	MinParticipants int // joined participants required to start
}

// DefaultGameConfig returns the default game configuration
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Capacity:        2,
		MinParticipants: 2,
	}
}

// Drawing is a participant's submitted drawing reference. Drawings are
// kept in submission order; the winner index points into this slice.
type Drawing struct {
	Participant Identity `json:"participant"`
	Ref         string   `json:"ref"`
}

// Game is the per-session ledger record driven through the phase
// machine. The host is not part of Participants; it holds elevated
// authorization via the Host field instead.
type Game struct {
	ID           GameID
	Host         Identity // immutable after creation
	Config       GameConfig
	Status       GameStatus
	Participants []Identity // join order
	Story        string
	Drawings     []Drawing // submission order
	WinnerIndex  *uint32   // nil until a winner is selected

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Address derives the record address for this game.
func (g *Game) Address() keys.Address {
	return keys.Game(string(g.ID))
}

// HasParticipant reports whether identity has joined the game.
func (g *Game) HasParticipant(identity Identity) bool {
	for _, p := range g.Participants {
		if p == identity {
			return true
		}
	}
	return false
}

// HasDrawingFrom reports whether identity already submitted a drawing.
func (g *Game) HasDrawingFrom(identity Identity) bool {
	for _, d := range g.Drawings {
		if d.Participant == identity {
			return true
		}
	}
	return false
}

// AllDrawingsIn reports whether every participant has submitted.
func (g *Game) AllDrawingsIn() bool {
	return len(g.Drawings) == len(g.Participants)
}

// Winner returns the winning drawing, or nil if none selected yet.
func (g *Game) Winner() *Drawing {
	if g.WinnerIndex == nil || int(*g.WinnerIndex) >= len(g.Drawings) {
		return nil
	}
	return &g.Drawings[*g.WinnerIndex]
}

// Everyone returns the host plus all joined participants.
func (g *Game) Everyone() []Identity {
	all := make([]Identity, 0, len(g.Participants)+1)
	all = append(all, g.Host)
	all = append(all, g.Participants...)
	return all
}
