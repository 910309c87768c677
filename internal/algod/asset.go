package algod

import (
	"context"
	"fmt"
)

// AssetByID retrieves an asset's on-chain parameters.
func (c *Client) AssetByID(ctx context.Context, assetID uint64) (Asset, error) {
	var asset Asset
	path := fmt.Sprintf("/v2/assets/%d", assetID)
	if err := c.getJSON(ctx, "asset-by-id", path, &asset); err != nil {
		return Asset{}, fmt.Errorf("fetching asset %d: %w", assetID, err)
	}
	return asset, nil
}
