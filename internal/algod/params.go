package algod

import (
	"context"
	"fmt"
)

// SuggestedParams retrieves the current suggested transaction parameters.
// Callers must fetch these fresh per build; network conditions change per
// round and a stale snapshot invalidates the transaction.
func (c *Client) SuggestedParams(ctx context.Context) (TransactionParams, error) {
	var params TransactionParams
	if err := c.getJSON(ctx, "suggested-params", "/v2/transactions/params", &params); err != nil {
		return TransactionParams{}, fmt.Errorf("fetching suggested params: %w", err)
	}
	return params, nil
}
