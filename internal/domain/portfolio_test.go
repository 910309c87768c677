package domain

import "testing"

func TestClassifyAsset(t *testing.T) {
	tests := []struct {
		name     string
		total    uint64
		decimals uint32
		want     AssetClass
	}{
		{"supply 1 decimals 0", 1, 0, ClassNonFungible},
		{"supply 1 decimals 1", 1, 1, ClassFungible},
		{"supply 2 decimals 0", 2, 0, ClassFungible},
		{"large supply with decimals", 10_000_000, 6, ClassFungible},
		{"zero supply", 0, 0, ClassFungible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyAsset(tt.total, tt.decimals); got != tt.want {
				t.Errorf("ClassifyAsset(%d, %d) = %s, want %s", tt.total, tt.decimals, got, tt.want)
			}
		})
	}
}

func TestHeldNFTs(t *testing.T) {
	acc := ClassifiedAccount{
		Held: []ClassifiedAsset{
			{AssetHolding: AssetHolding{AssetID: 1}, Class: ClassNonFungible},
			{AssetHolding: AssetHolding{AssetID: 2}, Class: ClassFungible},
			{AssetHolding: AssetHolding{AssetID: 3}, Class: ClassNonFungible},
		},
	}

	nfts := acc.HeldNFTs()
	if len(nfts) != 2 {
		t.Fatalf("len(nfts) = %d, want 2", len(nfts))
	}
	if nfts[0].AssetID != 1 || nfts[1].AssetID != 3 {
		t.Errorf("nft ids = %d, %d, want 1, 3", nfts[0].AssetID, nfts[1].AssetID)
	}
}
