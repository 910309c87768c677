package wallet

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/algoport/algoport/internal/classifier"
	"github.com/algoport/algoport/internal/domain"
	"github.com/algoport/algoport/internal/pipeline"
	"github.com/algoport/algoport/internal/price"
	"github.com/algoport/algoport/internal/session"
	"github.com/algoport/algoport/internal/signing"
	"github.com/algoport/algoport/internal/txbuilder"
)

// Service composes the transaction lifecycle: build with fresh fee
// parameters, sign through the external capability, submit and watch
// for confirmation. Portfolio reads run independently on a snapshot.
type Service struct {
	session    *session.Session
	builder    *txbuilder.Builder
	signer     *signing.Coordinator
	pipeline   *pipeline.Pipeline
	classifier *classifier.Service
	prices     *price.Service
}

// NewService creates a wallet Service. All dependencies are required.
func NewService(
	sess *session.Session,
	builder *txbuilder.Builder,
	signer *signing.Coordinator,
	pipe *pipeline.Pipeline,
	class *classifier.Service,
	prices *price.Service,
) *Service {
	if sess == nil {
		panic("wallet.NewService: session is nil")
	}
	if builder == nil {
		panic("wallet.NewService: builder is nil")
	}
	if signer == nil {
		panic("wallet.NewService: signer is nil")
	}
	if pipe == nil {
		panic("wallet.NewService: pipeline is nil")
	}
	if class == nil {
		panic("wallet.NewService: classifier is nil")
	}
	if prices == nil {
		panic("wallet.NewService: prices is nil")
	}
	return &Service{
		session:    sess,
		builder:    builder,
		signer:     signer,
		pipeline:   pipe,
		classifier: class,
		prices:     prices,
	}
}

// SendPayment builds, signs and submits a payment from the connected
// account. Every attempt starts from a fresh build; a Rejected or
// Expired result requires calling this again, not resubmitting.
func (s *Service) SendPayment(ctx context.Context, receiver string, amountAlgos decimal.Decimal, note string) (domain.SubmissionResult, error) {
	sender, ok := s.session.Address()
	if !ok {
		return domain.SubmissionResult{}, signing.ErrNotConnected
	}

	txn, err := s.builder.BuildPayment(ctx, sender, receiver, amountAlgos, note)
	if err != nil {
		return domain.SubmissionResult{}, err
	}
	return s.signAndSubmit(ctx, txn)
}

// SendAsset builds, signs and submits an asset transfer from the
// connected account.
func (s *Service) SendAsset(ctx context.Context, receiver string, assetID uint64, amount int64) (domain.SubmissionResult, error) {
	sender, ok := s.session.Address()
	if !ok {
		return domain.SubmissionResult{}, signing.ErrNotConnected
	}

	txn, err := s.builder.BuildAssetTransfer(ctx, sender, receiver, assetID, amount)
	if err != nil {
		return domain.SubmissionResult{}, err
	}
	return s.signAndSubmit(ctx, txn)
}

// OptIn registers the connected account to hold the asset: a zero-amount
// transfer to self.
func (s *Service) OptIn(ctx context.Context, assetID uint64) (domain.SubmissionResult, error) {
	sender, ok := s.session.Address()
	if !ok {
		return domain.SubmissionResult{}, signing.ErrNotConnected
	}

	txn, err := s.builder.BuildAssetOptIn(ctx, sender, assetID)
	if err != nil {
		return domain.SubmissionResult{}, err
	}
	return s.signAndSubmit(ctx, txn)
}

func (s *Service) signAndSubmit(ctx context.Context, txn domain.Transaction) (domain.SubmissionResult, error) {
	signed, err := s.signer.Sign(ctx, txn)
	if err != nil {
		return domain.SubmissionResult{}, err
	}
	return s.pipeline.SubmitAndConfirm(ctx, signed)
}

// Portfolio fetches a fresh account snapshot, classifies it and derives
// the valuation estimate in one pass.
func (s *Service) Portfolio(ctx context.Context, address string) (domain.ClassifiedAccount, domain.PortfolioValuation, error) {
	snapshot, err := s.classifier.Snapshot(ctx, address)
	if err != nil {
		return domain.ClassifiedAccount{}, domain.PortfolioValuation{}, fmt.Errorf("fetching portfolio: %w", err)
	}

	classified, err := s.classifier.Classify(ctx, snapshot)
	if err != nil {
		return domain.ClassifiedAccount{}, domain.PortfolioValuation{}, err
	}

	valuation := classifier.Valuate(snapshot, classified, s.prices.AlgoPrice(ctx))
	return classified, valuation, nil
}
