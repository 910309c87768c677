package classifier

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/algoport/algoport/internal/algod"
	"github.com/algoport/algoport/internal/domain"
)

// metadataConcurrency bounds the per-asset metadata lookups issued while
// classifying a snapshot.
const metadataConcurrency = 4

// Node defines the subset of the node API the classifier needs.
type Node interface {
	AccountInformation(ctx context.Context, address string) (algod.Account, error)
	AssetByID(ctx context.Context, assetID uint64) (algod.Asset, error)
}

// Service classifies an account's assets into fungible and non-fungible
// buckets and derives a valuation estimate.
type Service struct {
	node Node
}

// NewService creates a classifier Service.
func NewService(node Node) *Service {
	return &Service{node: node}
}

// Snapshot fetches the account's state wholesale. The returned value is
// immutable; the next fetch supersedes it entirely.
func (s *Service) Snapshot(ctx context.Context, address string) (domain.AccountSnapshot, error) {
	account, err := s.node.AccountInformation(ctx, address)
	if err != nil {
		return domain.AccountSnapshot{}, fmt.Errorf("fetching snapshot for %s: %w", address, err)
	}

	held := lo.Map(account.Assets, func(a algod.AssetHolding, _ int) domain.AssetBalance {
		return domain.AssetBalance{AssetID: a.AssetID, Amount: a.Amount}
	})

	// Created is a creator relationship, not a balance: the account's
	// actual holding of a created asset, if any, appears in Held.
	created := lo.Map(account.CreatedAssets, func(a algod.Asset, _ int) domain.AssetHolding {
		return domain.AssetHolding{
			AssetID:  a.Index,
			Amount:   0,
			Total:    a.Params.Total,
			Decimals: a.Params.Decimals,
			Name:     a.Params.Name,
			UnitName: a.Params.UnitName,
			URL:      a.Params.URL,
			Creator:  account.Address,
		}
	})

	return domain.AccountSnapshot{
		Address:    account.Address,
		MicroAlgos: account.Amount,
		Held:       held,
		Created:    created,
	}, nil
}

// Classify partitions the snapshot's held and created assets. Held assets
// need a per-asset metadata lookup; lookups run concurrently and a
// failing one only omits that asset from the result — it never aborts
// the rest. Held and created are distinct relationships, so an asset the
// account both created and holds appears in both views.
//
// Output ordering is deterministic (ascending asset id), so repeated
// calls on the same snapshot yield identical results.
func (s *Service) Classify(ctx context.Context, snapshot domain.AccountSnapshot) (domain.ClassifiedAccount, error) {
	var mu sync.Mutex
	var held []domain.ClassifiedAsset

	sem := make(chan struct{}, metadataConcurrency)
	var wg sync.WaitGroup

	for _, balance := range snapshot.Held {
		wg.Add(1)
		go func(balance domain.AssetBalance) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			asset, err := s.node.AssetByID(ctx, balance.AssetID)
			if err != nil {
				slog.Warn("skipping asset with unavailable metadata", "assetId", balance.AssetID, "error", err)
				return
			}

			classified := domain.ClassifiedAsset{
				AssetHolding: domain.AssetHolding{
					AssetID:  balance.AssetID,
					Amount:   balance.Amount,
					Total:    asset.Params.Total,
					Decimals: asset.Params.Decimals,
					Name:     asset.Params.Name,
					UnitName: asset.Params.UnitName,
					URL:      asset.Params.URL,
					Creator:  asset.Params.Creator,
				},
				Class: domain.ClassifyAsset(asset.Params.Total, asset.Params.Decimals),
			}

			mu.Lock()
			held = append(held, classified)
			mu.Unlock()
		}(balance)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return domain.ClassifiedAccount{}, err
	}

	sort.Slice(held, func(i, j int) bool { return held[i].AssetID < held[j].AssetID })

	created := lo.Map(snapshot.Created, func(a domain.AssetHolding, _ int) domain.ClassifiedAsset {
		return domain.ClassifiedAsset{
			AssetHolding: a,
			Class:        domain.ClassifyAsset(a.Total, a.Decimals),
		}
	})
	sort.Slice(created, func(i, j int) bool { return created[i].AssetID < created[j].AssetID })

	return domain.ClassifiedAccount{
		Address: snapshot.Address,
		Held:    held,
		Created: created,
	}, nil
}
