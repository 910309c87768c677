package algod

import (
	"context"
	"fmt"
)

// Status retrieves the node's current sync status.
func (c *Client) Status(ctx context.Context) (NodeStatus, error) {
	var status NodeStatus
	if err := c.getJSON(ctx, "status", "/v2/status", &status); err != nil {
		return NodeStatus{}, fmt.Errorf("fetching node status: %w", err)
	}
	return status, nil
}

// StatusAfterBlock blocks until the node has seen the given round, then
// returns its status. One call per round is the confirmation poll cadence.
func (c *Client) StatusAfterBlock(ctx context.Context, round uint64) (NodeStatus, error) {
	var status NodeStatus
	path := fmt.Sprintf("/v2/status/wait-for-block-after/%d", round)
	if err := c.getJSON(ctx, "status-after-block", path, &status); err != nil {
		return NodeStatus{}, fmt.Errorf("waiting for round %d: %w", round, err)
	}
	return status, nil
}
