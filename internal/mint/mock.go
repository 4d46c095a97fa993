package mint

import (
	"context"
	"sync"
)

// MockMinter is a Minter for tests. It records requests and can be
// told to fail.
type MockMinter struct {
	mu       sync.Mutex
	Requests []Request
	Err      error
	AssetRef string
}

var _ Minter = (*MockMinter)(nil)

// NewMockMinter creates a MockMinter that succeeds with the given asset ref
func NewMockMinter() *MockMinter {
	return &MockMinter{AssetRef: "asset-1"}
}

// Mint records the request and returns the configured result
func (m *MockMinter) Mint(ctx context.Context, req Request) (*Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests = append(m.Requests, req)
	if m.Err != nil {
		return nil, m.Err
	}
	return &Receipt{AssetRef: m.AssetRef}, nil
}

// Fail makes subsequent mints fail with err
func (m *MockMinter) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Err = err
}
