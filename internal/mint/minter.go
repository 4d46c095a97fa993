package mint

import (
	"context"

	"github.com/pixelana/pixelana-go/internal/model"
)

// Request carries everything the minting collaborator needs to produce
// the reward asset for a finished game.
type Request struct {
	GameID     model.GameID   `json:"game_id"`
	Winner     model.Identity `json:"winner"`
	DrawingRef string         `json:"drawing_ref"`
}

// Receipt reports the collaborator's result for a successful mint.
type Receipt struct {
	AssetRef string `json:"asset_ref"`
}

// Minter is the minting trigger collaborator. Mint either fully
// succeeds or fails with no state left behind; a failed mint is
// retryable by resubmitting the operation.
type Minter interface {
	Mint(ctx context.Context, req Request) (*Receipt, error)
}
