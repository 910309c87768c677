package domain

import "github.com/shopspring/decimal"

// AssetClass is the fungibility classification of an asset.
type AssetClass string

const (
	ClassFungible    AssetClass = "fungible"
	ClassNonFungible AssetClass = "non-fungible"
)

// ClassifyAsset applies the classification rule: an asset is non-fungible
// if and only if its total supply is exactly 1 and it has 0 decimals.
func ClassifyAsset(total uint64, decimals uint32) AssetClass {
	if total == 1 && decimals == 0 {
		return ClassNonFungible
	}
	return ClassFungible
}

// ClassifiedAsset is an AssetHolding tagged with its class. Derived, never
// persisted; recomputed whenever the underlying snapshot changes.
type ClassifiedAsset struct {
	AssetHolding
	Class AssetClass `json:"class"`
}

// IsNFT reports whether the asset classified as non-fungible.
func (c ClassifiedAsset) IsNFT() bool { return c.Class == ClassNonFungible }

// ClassifiedAccount partitions an account's held and created assets.
// The two views are distinct relationships: an asset the account both
// created and holds appears in both, on purpose.
type ClassifiedAccount struct {
	Address string            `json:"address"`
	Held    []ClassifiedAsset `json:"held"`
	Created []ClassifiedAsset `json:"created"`
}

// HeldNFTs returns the non-fungible subset of the held assets.
func (c ClassifiedAccount) HeldNFTs() []ClassifiedAsset {
	var nfts []ClassifiedAsset
	for _, a := range c.Held {
		if a.IsNFT() {
			nfts = append(nfts, a)
		}
	}
	return nfts
}

// PortfolioValuation is a derived, ephemeral estimate of an account's
// worth in USD. The non-native component is a placeholder heuristic, not
// a priced valuation — there is no per-asset price oracle.
type PortfolioValuation struct {
	AlgoBalance   decimal.Decimal `json:"algoBalance"`
	AlgoPriceUSD  decimal.Decimal `json:"algoPriceUsd"`
	AlgoValueUSD  decimal.Decimal `json:"algoValueUsd"`
	AssetsEstUSD  decimal.Decimal `json:"assetsEstimateUsd"`
	TotalUSD      decimal.Decimal `json:"totalUsd"`
	HeldAssets    int             `json:"heldAssets"`
	NonFungibles  int             `json:"nonFungibles"`
}
