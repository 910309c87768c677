package classifier

import (
	"github.com/shopspring/decimal"

	"github.com/algoport/algoport/internal/domain"
)

// Per-asset estimates are placeholders, not real pricing: no per-asset
// price oracle exists, so every non-native holding is counted at a fixed
// constant by class. Callers must treat the result as an estimate.
var (
	nftEstimateUSD   = decimal.NewFromInt(50)
	tokenEstimateUSD = decimal.NewFromInt(10)
)

// Valuate derives a portfolio valuation estimate from a snapshot and its
// classified held assets. Native value is the algo balance times the
// supplied USD quote; non-native value sums the per-class placeholder
// constants over holdings with a positive amount.
func Valuate(snapshot domain.AccountSnapshot, classified domain.ClassifiedAccount, algoPriceUSD decimal.Decimal) domain.PortfolioValuation {
	algoBalance := domain.MicroAlgosToAlgos(snapshot.MicroAlgos)
	algoValue := algoBalance.Mul(algoPriceUSD)

	assetsValue := decimal.Zero
	nfts := 0
	for _, asset := range classified.Held {
		if asset.IsNFT() {
			nfts++
		}
		if asset.Amount == 0 {
			continue
		}
		if asset.IsNFT() {
			assetsValue = assetsValue.Add(nftEstimateUSD)
		} else {
			assetsValue = assetsValue.Add(tokenEstimateUSD)
		}
	}

	return domain.PortfolioValuation{
		AlgoBalance:  algoBalance,
		AlgoPriceUSD: algoPriceUSD,
		AlgoValueUSD: algoValue,
		AssetsEstUSD: assetsValue,
		TotalUSD:     algoValue.Add(assetsValue),
		HeldAssets:   len(classified.Held),
		NonFungibles: nfts,
	}
}
