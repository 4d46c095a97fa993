package mint

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pixelana/pixelana-go/internal/model"
)

// HTTPMinter invokes an external mint service over HTTP. The service
// accepts the mint request as JSON and answers with a receipt.
type HTTPMinter struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPMinter creates a minter client for the given service URL
func NewHTTPMinter(baseURL string) *HTTPMinter {
	return &HTTPMinter{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

var _ Minter = (*HTTPMinter)(nil)

// Mint posts the request to the mint service. Any transport error or
// non-2xx response surfaces as ErrMintFailed so callers can retry.
func (m *HTTPMinter) Mint(ctx context.Context, req Request) (*Receipt, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/mint", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMintFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMintFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: HTTP %d", model.ErrMintFailed, resp.StatusCode)
	}

	var receipt Receipt
	if err := json.Unmarshal(body, &receipt); err != nil {
		return nil, fmt.Errorf("%w: bad receipt: %v", model.ErrMintFailed, err)
	}
	return &receipt, nil
}
