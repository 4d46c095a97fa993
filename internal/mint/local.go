package mint

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// LocalMinter fabricates receipts without an external service. Useful
// for development and environments where no mint service is deployed.
// The asset ref is deterministic for a given request so retries are
// stable.
type LocalMinter struct{}

var _ Minter = (*LocalMinter)(nil)

// NewLocalMinter creates a LocalMinter
func NewLocalMinter() *LocalMinter {
	return &LocalMinter{}
}

// Mint returns a receipt derived from the request contents
func (m *LocalMinter) Mint(ctx context.Context, req Request) (*Receipt, error) {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%s", req.GameID, req.Winner, req.DrawingRef)))
	return &Receipt{AssetRef: "local:" + hex.EncodeToString(sum[:16])}, nil
}
