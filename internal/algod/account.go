package algod

import (
	"context"
	"fmt"
)

// AccountInformation retrieves an account's state: native balance, held
// assets and created assets, as of the node's current round.
func (c *Client) AccountInformation(ctx context.Context, address string) (Account, error) {
	if address == "" {
		return Account{}, fmt.Errorf("account address is empty")
	}
	var account Account
	if err := c.getJSON(ctx, "account-information", "/v2/accounts/"+address, &account); err != nil {
		return Account{}, fmt.Errorf("fetching account %s: %w", address, err)
	}
	return account, nil
}
