package indexer

// AssetSummary is one result of an asset search.
type AssetSummary struct {
	Index  uint64          `json:"index"`
	Params AssetParamsView `json:"params"`
}

// AssetParamsView mirrors the indexer's asset params shape.
type AssetParamsView struct {
	Total    uint64 `json:"total"`
	Decimals uint32 `json:"decimals"`
	Name     string `json:"name"`
	UnitName string `json:"unit-name"`
	URL      string `json:"url"`
	Creator  string `json:"creator"`
}

// assetSearchResponse wraps GET /v2/assets results.
type assetSearchResponse struct {
	Assets    []AssetSummary `json:"assets"`
	NextToken string         `json:"next-token"`
}

// TransactionRecord is one historical transaction for an account.
type TransactionRecord struct {
	ID             string                `json:"id"`
	TxType         string                `json:"tx-type"`
	Sender         string                `json:"sender"`
	Fee            uint64                `json:"fee"`
	ConfirmedRound uint64                `json:"confirmed-round"`
	RoundTime      int64                 `json:"round-time"`
	Payment        *PaymentDetails       `json:"payment-transaction,omitempty"`
	AssetTransfer  *AssetTransferDetails `json:"asset-transfer-transaction,omitempty"`
}

// PaymentDetails holds the payment-specific fields of a transaction record.
type PaymentDetails struct {
	Receiver string `json:"receiver"`
	Amount   uint64 `json:"amount"`
}

// AssetTransferDetails holds the asset-transfer-specific fields.
type AssetTransferDetails struct {
	Receiver string `json:"receiver"`
	Amount   uint64 `json:"amount"`
	AssetID  uint64 `json:"asset-id"`
}

// TransactionPage is one page of an account's transaction history.
// NextToken is passed back to continue from where this page ended.
type TransactionPage struct {
	Transactions []TransactionRecord `json:"transactions"`
	NextToken    string              `json:"next-token"`
	CurrentRound uint64              `json:"current-round"`
}
