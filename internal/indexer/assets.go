package indexer

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// SearchAssets finds assets whose name matches the query, up to limit
// results. An empty query is rejected before any network call.
func (c *Client) SearchAssets(ctx context.Context, query string, limit int) ([]AssetSummary, error) {
	if query == "" {
		return nil, fmt.Errorf("asset search query is empty")
	}
	if limit <= 0 {
		limit = 20
	}

	q := url.Values{}
	q.Set("name", query)
	q.Set("limit", strconv.Itoa(limit))

	var resp assetSearchResponse
	if err := c.getJSON(ctx, "/v2/assets?"+q.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("searching assets %q: %w", query, err)
	}
	return resp.Assets, nil
}
