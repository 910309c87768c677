package indexer

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// AccountTransactions retrieves one page of an account's transaction
// history, most recent first. Pass the previous page's NextToken to
// continue; an empty token starts from the top.
func (c *Client) AccountTransactions(ctx context.Context, address string, limit int, nextToken string) (TransactionPage, error) {
	if address == "" {
		return TransactionPage{}, fmt.Errorf("account address is empty")
	}
	if limit <= 0 {
		limit = 50
	}

	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	if nextToken != "" {
		q.Set("next", nextToken)
	}

	var page TransactionPage
	path := fmt.Sprintf("/v2/accounts/%s/transactions?%s", address, q.Encode())
	if err := c.getJSON(ctx, path, &page); err != nil {
		return TransactionPage{}, fmt.Errorf("fetching transactions for %s: %w", address, err)
	}
	return page, nil
}
