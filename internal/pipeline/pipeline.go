package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/algoport/algoport/internal/algod"
	"github.com/algoport/algoport/internal/domain"
)

// DefaultConfirmationRounds is the round budget for observing inclusion,
// mirroring the network's typical finality window.
const DefaultConfirmationRounds = 4

// Node defines the subset of the node API the pipeline needs.
type Node interface {
	SubmitRaw(ctx context.Context, signedBytes []byte) (string, error)
	PendingTransactionInfo(ctx context.Context, txID string) (algod.PendingTransaction, error)
	Status(ctx context.Context) (algod.NodeStatus, error)
	StatusAfterBlock(ctx context.Context, round uint64) (algod.NodeStatus, error)
}

// Pipeline submits signed transactions and polls for confirmation once
// per round boundary, up to a bounded round budget.
type Pipeline struct {
	node   Node
	rounds uint64
}

// New creates a Pipeline with the given round budget; zero selects
// DefaultConfirmationRounds.
func New(node Node, rounds uint64) *Pipeline {
	if rounds == 0 {
		rounds = DefaultConfirmationRounds
	}
	return &Pipeline{node: node, rounds: rounds}
}

// SubmitAndConfirm submits the signed bytes and watches for inclusion.
//
// The result is terminal: Confirmed carries the confirming round;
// Rejected means the node refused the transaction and the caller must
// rebuild with fresh fee parameters; Expired means the round budget
// elapsed without observing inclusion — the transaction may still
// confirm later, so the caller should re-query before assuming failure.
// Reusing the same signed bytes after Expired is disallowed because the
// validity window may have lapsed.
//
// A non-nil error is a transport failure: the attempt's outcome was not
// observed and the whole build-sign-submit sequence is safe to retry
// from scratch. Cancelling ctx stops observation without affecting
// ledger state.
func (p *Pipeline) SubmitAndConfirm(ctx context.Context, signed domain.SignedTransaction) (domain.SubmissionResult, error) {
	txID, err := p.node.SubmitRaw(ctx, signed.Blob)
	if err != nil {
		var ae *algod.Error
		if errors.As(err, &ae) && ae.Kind == algod.KindRejected {
			slog.Warn("transaction rejected by node", "kind", signed.Kind, "id", signed.ID, "reason", ae.Message)
			return domain.SubmissionResult{
				Kind:   signed.Kind,
				State:  domain.StateRejected,
				Reason: ae.Message,
			}, nil
		}
		return domain.SubmissionResult{}, fmt.Errorf("submitting %s transaction %s: %w", signed.Kind, signed.ID, err)
	}

	slog.Info("transaction submitted", "kind", signed.Kind, "txId", txID)

	status, err := p.node.Status(ctx)
	if err != nil {
		return domain.SubmissionResult{}, fmt.Errorf("reading node status for %s: %w", txID, err)
	}

	start := status.LastRound
	for round := start; round < start+p.rounds; round++ {
		if err := ctx.Err(); err != nil {
			return domain.SubmissionResult{}, err
		}

		pending, err := p.node.PendingTransactionInfo(ctx, txID)
		if err != nil {
			return domain.SubmissionResult{}, fmt.Errorf("polling transaction %s: %w", txID, err)
		}

		if pending.PoolError != "" {
			slog.Warn("transaction dropped from pool", "txId", txID, "reason", pending.PoolError)
			return domain.SubmissionResult{
				TxID:   txID,
				Kind:   signed.Kind,
				State:  domain.StateRejected,
				Reason: pending.PoolError,
			}, nil
		}

		if pending.ConfirmedRound > 0 {
			slog.Info("transaction confirmed", "txId", txID, "round", pending.ConfirmedRound)
			return domain.SubmissionResult{
				TxID:           txID,
				Kind:           signed.Kind,
				State:          domain.StateConfirmed,
				ConfirmedRound: pending.ConfirmedRound,
			}, nil
		}

		// No poll follows the last budgeted round, so don't wait for it.
		if round+1 < start+p.rounds {
			if _, err := p.node.StatusAfterBlock(ctx, round); err != nil {
				return domain.SubmissionResult{}, fmt.Errorf("waiting for round %d: %w", round+1, err)
			}
		}
	}

	slog.Warn("confirmation not observed within budget", "txId", txID, "rounds", p.rounds)
	return domain.SubmissionResult{
		TxID:   txID,
		Kind:   signed.Kind,
		State:  domain.StateExpired,
		Reason: fmt.Sprintf("not confirmed within %d rounds", p.rounds),
	}, nil
}
