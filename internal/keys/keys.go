package keys

import (
	"crypto/sha256"
	"encoding/hex"
)

// Namespace tags for record derivation. Each record kind derives its
// address from its tag plus a kind-specific key, so addresses from
// different kinds can never collide even for equal keys.
const (
	TagVault  = "vault"
	TagPlayer = "player"
	TagGame   = "game"
)

// Address is the derived location of a ledger record. Addresses are
// deterministic: the same tag and key always derive the same address.
type Address string

// derive hashes a namespace tag and key into an Address.
func derive(tag string, key []byte) Address {
	h := sha256.New()
	h.Write([]byte(tag))
	h.Write([]byte{0}) // separator so tag/key boundaries are unambiguous
	h.Write(key)
	return Address(hex.EncodeToString(h.Sum(nil)))
}

// Vault derives the address of the global vault record.
func Vault() Address {
	return derive(TagVault, nil)
}

// Player derives the address of the player record owned by identity.
func Player(identity string) Address {
	return derive(TagPlayer, []byte(identity))
}

// Game derives the address of the game record for the given game id.
func Game(id string) Address {
	return derive(TagGame, []byte(id))
}
