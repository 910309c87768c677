package txbuilder

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/algoport/algoport/internal/algod"
	"github.com/algoport/algoport/internal/domain"
)

// ErrInvalidInput marks a malformed caller-supplied parameter. Always
// detected before any network call.
var ErrInvalidInput = errors.New("invalid input")

// ParamsFetcher defines the subset of the node API the builder needs.
type ParamsFetcher interface {
	SuggestedParams(ctx context.Context) (algod.TransactionParams, error)
}

// Builder constructs unsigned transactions. Every build fetches a fresh
// fee-parameter snapshot; building never transmits anything.
type Builder struct {
	params ParamsFetcher
}

// NewBuilder creates a transaction Builder.
func NewBuilder(params ParamsFetcher) *Builder {
	return &Builder{params: params}
}

// BuildPayment constructs a native-currency payment of amountAlgos major
// units. The amount must convert exactly to microalgos; inexact amounts
// are rejected rather than truncated.
func (b *Builder) BuildPayment(ctx context.Context, sender, receiver string, amountAlgos decimal.Decimal, note string) (domain.PaymentTx, error) {
	if sender == "" {
		return domain.PaymentTx{}, fmt.Errorf("%w: sender is empty", ErrInvalidInput)
	}
	if receiver == "" {
		return domain.PaymentTx{}, fmt.Errorf("%w: receiver is empty", ErrInvalidInput)
	}
	if !amountAlgos.IsPositive() {
		return domain.PaymentTx{}, fmt.Errorf("%w: amount %s must be positive", ErrInvalidInput, amountAlgos)
	}

	micro, err := domain.AlgosToMicroAlgos(amountAlgos)
	if err != nil {
		return domain.PaymentTx{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	fee, err := b.fetchParams(ctx)
	if err != nil {
		return domain.PaymentTx{}, err
	}

	tx := domain.PaymentTx{
		From:       sender,
		To:         receiver,
		MicroAlgos: micro,
		Fee:        fee,
	}
	if note != "" {
		tx.Note = []byte(note)
	}
	return tx, nil
}

// BuildAssetTransfer constructs a transfer of amount base units of the
// given asset. A zero amount is permitted: a zero-amount transfer to self
// is the opt-in idiom (see BuildAssetOptIn).
func (b *Builder) BuildAssetTransfer(ctx context.Context, sender, receiver string, assetID uint64, amount int64) (domain.AssetTransferTx, error) {
	if sender == "" {
		return domain.AssetTransferTx{}, fmt.Errorf("%w: sender is empty", ErrInvalidInput)
	}
	if receiver == "" {
		return domain.AssetTransferTx{}, fmt.Errorf("%w: receiver is empty", ErrInvalidInput)
	}
	if assetID == 0 {
		return domain.AssetTransferTx{}, fmt.Errorf("%w: asset id must be positive", ErrInvalidInput)
	}
	if amount < 0 {
		return domain.AssetTransferTx{}, fmt.Errorf("%w: amount %d must not be negative (asset %d)", ErrInvalidInput, amount, assetID)
	}

	fee, err := b.fetchParams(ctx)
	if err != nil {
		return domain.AssetTransferTx{}, err
	}

	return domain.AssetTransferTx{
		From:    sender,
		To:      receiver,
		AssetID: assetID,
		Amount:  uint64(amount),
		Fee:     fee,
	}, nil
}

// BuildAssetOptIn constructs the opt-in shape for an asset: an asset
// transfer with receiver forced equal to sender and amount forced to
// zero. This is the protocol idiom for registering an account to hold
// the asset, not a distinct wire transaction type.
func (b *Builder) BuildAssetOptIn(ctx context.Context, sender string, assetID uint64) (domain.AssetTransferTx, error) {
	if sender == "" {
		return domain.AssetTransferTx{}, fmt.Errorf("%w: sender is empty", ErrInvalidInput)
	}
	if assetID == 0 {
		return domain.AssetTransferTx{}, fmt.Errorf("%w: asset id must be positive", ErrInvalidInput)
	}

	fee, err := b.fetchParams(ctx)
	if err != nil {
		return domain.AssetTransferTx{}, err
	}

	return domain.AssetTransferTx{
		From:    sender,
		To:      sender,
		AssetID: assetID,
		Amount:  0,
		OptIn:   true,
		Fee:     fee,
	}, nil
}

// fetchParams obtains a fresh fee-parameter snapshot and derives the
// validity window. Never cached across builds.
func (b *Builder) fetchParams(ctx context.Context) (domain.FeeParameters, error) {
	p, err := b.params.SuggestedParams(ctx)
	if err != nil {
		return domain.FeeParameters{}, fmt.Errorf("fetching fee parameters: %w", err)
	}

	fee := p.Fee
	if fee < p.MinFee {
		fee = p.MinFee
	}

	return domain.FeeParameters{
		Fee:         fee,
		MinFee:      p.MinFee,
		FirstValid:  p.LastRound,
		LastValid:   p.LastRound + domain.ValidityWindowRounds,
		GenesisID:   p.GenesisID,
		GenesisHash: p.GenesisHash,
	}, nil
}
