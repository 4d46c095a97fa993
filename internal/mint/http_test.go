package mint

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelana/pixelana-go/internal/model"
)

func TestHTTPMinterSucceeds(t *testing.T) {
	var received Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/mint", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Receipt{AssetRef: "nft:abc123"})
	}))
	defer srv.Close()

	minter := NewHTTPMinter(srv.URL)
	receipt, err := minter.Mint(context.Background(), Request{
		GameID:     "ABCD1234",
		Winner:     "alice",
		DrawingRef: "drawing_1",
	})
	require.NoError(t, err)

	assert.Equal(t, "nft:abc123", receipt.AssetRef)
	assert.Equal(t, model.GameID("ABCD1234"), received.GameID)
	assert.Equal(t, model.Identity("alice"), received.Winner)
	assert.Equal(t, "drawing_1", received.DrawingRef)
}

func TestHTTPMinterServerErrorIsMintFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	minter := NewHTTPMinter(srv.URL)
	_, err := minter.Mint(context.Background(), Request{GameID: "ABCD1234"})
	assert.ErrorIs(t, err, model.ErrMintFailed)
}

func TestHTTPMinterUnreachableIsMintFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut down before use

	minter := NewHTTPMinter(srv.URL)
	_, err := minter.Mint(context.Background(), Request{GameID: "ABCD1234"})
	assert.ErrorIs(t, err, model.ErrMintFailed)
}

func TestHTTPMinterBadReceiptIsMintFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	minter := NewHTTPMinter(srv.URL)
	_, err := minter.Mint(context.Background(), Request{GameID: "ABCD1234"})
	assert.ErrorIs(t, err, model.ErrMintFailed)
}

func TestLocalMinterIsDeterministic(t *testing.T) {
	minter := NewLocalMinter()
	req := Request{GameID: "ABCD1234", Winner: "alice", DrawingRef: "drawing_1"}

	first, err := minter.Mint(context.Background(), req)
	require.NoError(t, err)
	second, err := minter.Mint(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.AssetRef, second.AssetRef)

	other, err := minter.Mint(context.Background(), Request{GameID: "EFGH5678", Winner: "bob", DrawingRef: "x"})
	require.NoError(t, err)
	assert.NotEqual(t, first.AssetRef, other.AssetRef)
}
