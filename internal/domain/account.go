package domain

// AssetBalance is a held-asset entry as reported on an account: the asset
// identifier and the raw base-unit amount, without metadata.
type AssetBalance struct {
	AssetID uint64 `json:"assetId"`
	Amount  uint64 `json:"amount"`
}

// AssetHolding is a held or created asset enriched with its network
// metadata. Read-only snapshot, re-fetched per classification pass.
type AssetHolding struct {
	AssetID  uint64 `json:"assetId"`
	Amount   uint64 `json:"amount"`
	Total    uint64 `json:"total"`
	Decimals uint32 `json:"decimals"`
	Name     string `json:"name,omitempty"`
	UnitName string `json:"unitName,omitempty"`
	URL      string `json:"url,omitempty"`
	Creator  string `json:"creator,omitempty"`
}

// AccountSnapshot is an account's state fetched wholesale from the node.
// Immutable; a newer fetch supersedes it entirely, there is no patching.
type AccountSnapshot struct {
	Address    string         `json:"address"`
	MicroAlgos uint64         `json:"microAlgos"`
	Held       []AssetBalance `json:"held"`
	Created    []AssetHolding `json:"created"`
}
