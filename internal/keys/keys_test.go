package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivationIsDeterministic(t *testing.T) {
	assert.Equal(t, Vault(), Vault())
	assert.Equal(t, Player("alice"), Player("alice"))
	assert.Equal(t, Game("ABCD1234"), Game("ABCD1234"))
}

func TestDifferentKeysDeriveDifferentAddresses(t *testing.T) {
	assert.NotEqual(t, Player("alice"), Player("bob"))
	assert.NotEqual(t, Game("ABCD1234"), Game("ABCD1235"))
}

func TestNamespacesNeverCollide(t *testing.T) {
	// Equal keys under different tags must not derive equal addresses.
	assert.NotEqual(t, Player("ABCD1234"), Game("ABCD1234"))
	assert.NotEqual(t, derive(TagVault, []byte("x")), derive(TagGame, []byte("x")))
}

func TestSeparatorPreventsBoundaryAmbiguity(t *testing.T) {
	// "game"+"X" and "gameX"+"" must hash differently.
	assert.NotEqual(t, derive("game", []byte("X")), derive("gameX", nil))
}

func TestAddressIsHexEncoded(t *testing.T) {
	addr := Vault()
	assert.Len(t, string(addr), 64)
	for _, c := range string(addr) {
		assert.Contains(t, "0123456789abcdef", string(c))
	}
}
