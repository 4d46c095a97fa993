package model

import "time"

// Wallet holds the credential material backing an identity. It is
// stored separately from the Player record: a wallet authorizes
// requests, a player tracks ledger state.
type Wallet struct {
	Identity       Identity
	PassphraseHash string // bcrypt hash
	CreatedAt      time.Time
}
