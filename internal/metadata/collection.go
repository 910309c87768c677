package metadata

import (
	"context"
	"log/slog"
	"sync"

	"github.com/algoport/algoport/internal/domain"
)

// lookupConcurrency bounds the metadata documents fetched in parallel
// while resolving a collection.
const lookupConcurrency = 4

// Item is one non-fungible holding together with its resolved metadata
// document. Metadata is nil when the asset carries no URL or the
// document could not be fetched; the holding itself is always present.
type Item struct {
	domain.ClassifiedAsset
	Metadata map[string]any `json:"metadata,omitempty"`
	ImageURL string         `json:"imageUrl,omitempty"`
}

// Collection resolves the metadata documents behind non-fungible
// holdings through a gateway Client.
type Collection struct {
	client *Client
}

// NewCollection creates a Collection over the gateway client.
func NewCollection(client *Client) *Collection {
	if client == nil {
		panic("metadata.NewCollection: client is nil")
	}
	return &Collection{client: client}
}

// Resolve fetches each asset's metadata document. Lookups run
// concurrently and a failing one only leaves that item without a
// document, it never aborts the rest. Output order follows the input.
func (c *Collection) Resolve(ctx context.Context, assets []domain.ClassifiedAsset) []Item {
	items := make([]Item, len(assets))

	var wg sync.WaitGroup
	sem := make(chan struct{}, lookupConcurrency)
	for i, asset := range assets {
		i, asset := i, asset
		items[i] = Item{ClassifiedAsset: asset}
		if asset.URL == "" {
			continue
		}

		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			doc, err := c.client.Fetch(ctx, asset.URL)
			if err != nil {
				slog.Warn("metadata lookup failed", "assetId", asset.AssetID, "error", err)
				return
			}
			items[i].Metadata = doc
			if image, ok := doc["image"].(string); ok {
				items[i].ImageURL = c.client.RewriteURL(image)
			}
		}()
	}
	wg.Wait()

	return items
}
