package algod

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// SubmitRaw posts signed transaction bytes to the node and returns the
// assigned transaction id. A 4xx answer is a protocol-level rejection
// (malformed transaction, stale parameters, insufficient balance) and
// surfaces as an *Error with KindRejected.
func (c *Client) SubmitRaw(ctx context.Context, signedBytes []byte) (string, error) {
	const op = "submit-raw"
	body, err := c.do(ctx, op, http.MethodPost, "/v2/transactions", "application/x-binary", signedBytes)
	if err != nil {
		return "", fmt.Errorf("submitting transaction: %w", err)
	}

	var resp submitResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", &Error{Kind: KindMalformed, Op: op, Message: err.Error(), Err: err}
	}
	if resp.TxID == "" {
		return "", &Error{Kind: KindMalformed, Op: op, Message: "response missing txId"}
	}
	return resp.TxID, nil
}

// PendingTransactionInfo retrieves the pool status of a submitted
// transaction. ConfirmedRound is non-zero once it has been included in a
// block; PoolError is non-empty when the pool dropped it.
func (c *Client) PendingTransactionInfo(ctx context.Context, txID string) (PendingTransaction, error) {
	var pending PendingTransaction
	if err := c.getJSON(ctx, "pending-transaction", "/v2/transactions/pending/"+txID, &pending); err != nil {
		return PendingTransaction{}, fmt.Errorf("fetching pending transaction %s: %w", txID, err)
	}
	return pending, nil
}
