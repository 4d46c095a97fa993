package model

import (
	"time"

	"github.com/pixelana/pixelana-go/internal/keys"
)

// Vault is the single global record holding pooled deposits. It is
// created exactly once; the record's existence is the creation lock.
type Vault struct {
	Creator Identity
	Balance uint64 // sum of all successful deposits

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Address derives the global vault address.
func (v *Vault) Address() keys.Address {
	return keys.Vault()
}
