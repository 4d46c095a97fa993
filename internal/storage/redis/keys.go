package redis

import (
	"fmt"

	"github.com/pixelana/pixelana-go/internal/model"
)

// Key prefix for all ledger records
const keyPrefix = "pixelana"

// vaultKey returns the Redis key for the global Vault record
func vaultKey() string {
	return fmt.Sprintf("%s:vault", keyPrefix)
}

// playerKey returns the Redis key for a Player record
func playerKey(owner model.Identity) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, owner)
}

// walletKey returns the Redis key for a Wallet record
func walletKey(identity model.Identity) string {
	return fmt.Sprintf("%s:wallet:%s", keyPrefix, identity)
}

// gameKey returns the Redis key for a Game record
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}
