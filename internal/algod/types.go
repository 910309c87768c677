package algod

// TransactionParams represents the JSON response from GET /v2/transactions/params.
type TransactionParams struct {
	ConsensusVersion string `json:"consensus-version"`
	Fee              uint64 `json:"fee"`
	GenesisHash      string `json:"genesis-hash"`
	GenesisID        string `json:"genesis-id"`
	LastRound        uint64 `json:"last-round"`
	MinFee           uint64 `json:"min-fee"`
}

// Account represents the JSON response from GET /v2/accounts/{address}.
type Account struct {
	Address       string         `json:"address"`
	Amount        uint64         `json:"amount"`
	Assets        []AssetHolding `json:"assets"`
	CreatedAssets []Asset        `json:"created-assets"`
	Round         uint64         `json:"round"`
}

// AssetHolding is a held-asset entry in an account response.
type AssetHolding struct {
	AssetID  uint64 `json:"asset-id"`
	Amount   uint64 `json:"amount"`
	IsFrozen bool   `json:"is-frozen"`
}

// Asset represents the JSON response from GET /v2/assets/{id}.
type Asset struct {
	Index  uint64      `json:"index"`
	Params AssetParams `json:"params"`
}

// AssetParams holds the on-chain parameters of an asset.
type AssetParams struct {
	Total    uint64 `json:"total"`
	Decimals uint32 `json:"decimals"`
	Name     string `json:"name"`
	UnitName string `json:"unit-name"`
	URL      string `json:"url"`
	Creator  string `json:"creator"`
}

// PendingTransaction represents the JSON response from
// GET /v2/transactions/pending/{txid}. ConfirmedRound is zero while the
// transaction is still in the pool.
type PendingTransaction struct {
	ConfirmedRound uint64 `json:"confirmed-round"`
	PoolError      string `json:"pool-error"`
}

// NodeStatus represents the JSON response from GET /v2/status.
type NodeStatus struct {
	LastRound uint64 `json:"last-round"`
}

// submitResponse wraps the transaction id returned by POST /v2/transactions.
type submitResponse struct {
	TxID string `json:"txId"`
}
