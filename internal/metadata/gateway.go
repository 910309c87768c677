package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const ipfsScheme = "ipfs://"

// Client fetches asset metadata JSON from arbitrary HTTP(S) URLs.
// Content-addressed URLs are rewritten to an HTTP gateway before the
// fetch.
type Client struct {
	gatewayURL string
	httpClient *http.Client
}

// NewClient creates a metadata Client. gatewayURL is the HTTP prefix
// substituted for the ipfs:// scheme, e.g. "https://ipfs.io/ipfs/".
func NewClient(gatewayURL string) *Client {
	return &Client{
		gatewayURL: gatewayURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// RewriteURL maps a content-addressed URL onto the HTTP gateway. Plain
// HTTP(S) URLs pass through unchanged.
func (c *Client) RewriteURL(rawURL string) string {
	if strings.HasPrefix(rawURL, ipfsScheme) {
		return c.gatewayURL + strings.TrimPrefix(rawURL, ipfsScheme)
	}
	return rawURL
}

// Fetch retrieves and decodes the metadata JSON behind the URL. Failures
// are returned to the caller; asset metadata is optional and callers
// decide whether a missing document matters.
func (c *Client) Fetch(ctx context.Context, rawURL string) (map[string]any, error) {
	url := c.RewriteURL(rawURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating metadata request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching metadata from %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("metadata HTTP %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading metadata from %s: %w", url, err)
	}

	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("parsing metadata from %s: %w", url, err)
	}
	return doc, nil
}
