package response

import (
	"github.com/pixelana/pixelana-go/internal/mint"
	"github.com/pixelana/pixelana-go/internal/model"
	"github.com/pixelana/pixelana-go/internal/services/auth"
)

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Identity     string `json:"identity"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Identity:     string(s.Identity),
		SessionToken: s.Token,
	}
}

// Vault represents the vault record in API responses
type Vault struct {
	Address string `json:"address"`
	Creator string `json:"creator"`
	Balance uint64 `json:"balance"`
}

// VaultFromModel converts a model.Vault
func VaultFromModel(v *model.Vault) Vault {
	return Vault{
		Address: string(v.Address()),
		Creator: string(v.Creator),
		Balance: v.Balance,
	}
}

// Player represents a player record in API responses
type Player struct {
	Address     string  `json:"address"`
	Owner       string  `json:"owner"`
	Balance     uint64  `json:"balance"`
	Games       uint64  `json:"games"`
	CurrentGame *string `json:"current_game"`
}

// PlayerFromModel converts a model.Player
func PlayerFromModel(p *model.Player) Player {
	resp := Player{
		Address: string(p.Address()),
		Owner:   string(p.Owner),
		Balance: p.Balance,
		Games:   p.Games,
	}
	if p.Current != nil {
		addr := string(*p.Current)
		resp.CurrentGame = &addr
	}
	return resp
}

// Drawing represents a submitted drawing in API responses
type Drawing struct {
	Participant string `json:"participant"`
	Ref         string `json:"ref"`
}

// Game represents a game record in API responses
type Game struct {
	ID           string    `json:"id"`
	Address      string    `json:"address"`
	Host         string    `json:"host"`
	Status       string    `json:"status"`
	Capacity     int       `json:"capacity"`
	Participants []string  `json:"participants"`
	Story        string    `json:"story,omitempty"`
	Drawings     []Drawing `json:"drawings"`
	WinnerIndex  *uint32   `json:"winner_index,omitempty"`
}

// GameFromModel converts a model.Game
func GameFromModel(g *model.Game) Game {
	participants := make([]string, len(g.Participants))
	for i, p := range g.Participants {
		participants[i] = string(p)
	}
	drawings := make([]Drawing, len(g.Drawings))
	for i, d := range g.Drawings {
		drawings[i] = Drawing{
			Participant: string(d.Participant),
			Ref:         d.Ref,
		}
	}
	return Game{
		ID:           string(g.ID),
		Address:      string(g.Address()),
		Host:         string(g.Host),
		Status:       string(g.Status),
		Capacity:     g.Config.Capacity,
		Participants: participants,
		Story:        g.Story,
		Drawings:     drawings,
		WinnerIndex:  g.WinnerIndex,
	}
}

// MintResponse is the response for a successful mint
type MintResponse struct {
	Game     Game   `json:"game"`
	AssetRef string `json:"asset_ref"`
}

// MintResponseFrom creates a MintResponse
func MintResponseFrom(g *model.Game, receipt *mint.Receipt) MintResponse {
	return MintResponse{
		Game:     GameFromModel(g),
		AssetRef: receipt.AssetRef,
	}
}
