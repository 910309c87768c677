package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/algoport/algoport/internal/algod"
	"github.com/algoport/algoport/internal/domain"
)

// mockNode simulates a node whose transaction confirms after confirmAfter
// pending polls (0 = never).
type mockNode struct {
	submitErr      error
	confirmAfter   int
	confirmedRound uint64
	poolError      string

	pendingPolls int
	waits        int
	round        uint64
}

func (m *mockNode) SubmitRaw(_ context.Context, _ []byte) (string, error) {
	if m.submitErr != nil {
		return "", m.submitErr
	}
	return "TXID1", nil
}

func (m *mockNode) PendingTransactionInfo(_ context.Context, _ string) (algod.PendingTransaction, error) {
	m.pendingPolls++
	if m.poolError != "" {
		return algod.PendingTransaction{PoolError: m.poolError}, nil
	}
	if m.confirmAfter > 0 && m.pendingPolls >= m.confirmAfter {
		return algod.PendingTransaction{ConfirmedRound: m.confirmedRound}, nil
	}
	return algod.PendingTransaction{}, nil
}

func (m *mockNode) Status(_ context.Context) (algod.NodeStatus, error) {
	return algod.NodeStatus{LastRound: m.round}, nil
}

func (m *mockNode) StatusAfterBlock(_ context.Context, round uint64) (algod.NodeStatus, error) {
	m.waits++
	m.round = round + 1
	return algod.NodeStatus{LastRound: m.round}, nil
}

func signedTx() domain.SignedTransaction {
	return domain.SignedTransaction{
		ID:   uuid.New(),
		Kind: domain.TxKindPayment,
		Blob: []byte{0x01},
	}
}

func TestSubmitAndConfirmConfirmed(t *testing.T) {
	node := &mockNode{round: 100, confirmAfter: 2, confirmedRound: 102}
	p := New(node, 4)

	result, err := p.SubmitAndConfirm(context.Background(), signedTx())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.State != domain.StateConfirmed {
		t.Fatalf("State = %s, want confirmed", result.State)
	}
	if result.ConfirmedRound != 102 {
		t.Errorf("ConfirmedRound = %d, want 102", result.ConfirmedRound)
	}
	if result.TxID != "TXID1" {
		t.Errorf("TxID = %q, want TXID1", result.TxID)
	}
	// Polling stops immediately after confirmation: no extra polls.
	if node.pendingPolls != 2 {
		t.Errorf("pending polls = %d, want 2", node.pendingPolls)
	}
}

func TestSubmitAndConfirmExpired(t *testing.T) {
	node := &mockNode{round: 100} // never confirms
	p := New(node, 4)

	result, err := p.SubmitAndConfirm(context.Background(), signedTx())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.State != domain.StateExpired {
		t.Fatalf("State = %s, want expired", result.State)
	}
	// Exactly one poll per budgeted round, then polling ceases.
	if node.pendingPolls != 4 {
		t.Errorf("pending polls = %d, want 4", node.pendingPolls)
	}
	// The last poll is terminal: no round wait follows it.
	if node.waits != 3 {
		t.Errorf("round waits = %d, want 3", node.waits)
	}
	if result.Reason == "" {
		t.Error("expired result must carry an explicit reason")
	}
}

func TestSubmitAndConfirmRejectedOnSubmit(t *testing.T) {
	node := &mockNode{
		round:     100,
		submitErr: &algod.Error{Kind: algod.KindRejected, Op: "submit-raw", StatusCode: 400, Message: "overspend"},
	}
	p := New(node, 4)

	result, err := p.SubmitAndConfirm(context.Background(), signedTx())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.State != domain.StateRejected {
		t.Fatalf("State = %s, want rejected", result.State)
	}
	if result.Reason != "overspend" {
		t.Errorf("Reason = %q, want overspend", result.Reason)
	}
	// A protocol rejection never enters the polling loop.
	if node.pendingPolls != 0 {
		t.Errorf("pending polls = %d, want 0", node.pendingPolls)
	}
}

func TestSubmitAndConfirmTransportFailureIsError(t *testing.T) {
	node := &mockNode{
		round:     100,
		submitErr: &algod.Error{Kind: algod.KindUnavailable, Op: "submit-raw"},
	}
	p := New(node, 4)

	_, err := p.SubmitAndConfirm(context.Background(), signedTx())
	if err == nil {
		t.Fatal("expected error for transport failure, got nil")
	}
}

func TestSubmitAndConfirmPoolErrorIsRejected(t *testing.T) {
	node := &mockNode{round: 100, poolError: "txn dead"}
	p := New(node, 4)

	result, err := p.SubmitAndConfirm(context.Background(), signedTx())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.State != domain.StateRejected {
		t.Fatalf("State = %s, want rejected", result.State)
	}
	if result.Reason != "txn dead" {
		t.Errorf("Reason = %q, want txn dead", result.Reason)
	}
}

func TestSubmitAndConfirmCancellation(t *testing.T) {
	node := &mockNode{round: 100}
	p := New(node, 4)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.SubmitAndConfirm(ctx, signedTx())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestZeroBudgetUsesDefault(t *testing.T) {
	node := &mockNode{round: 100}
	p := New(node, 0)

	result, err := p.SubmitAndConfirm(context.Background(), signedTx())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.State != domain.StateExpired {
		t.Fatalf("State = %s, want expired", result.State)
	}
	if node.pendingPolls != DefaultConfirmationRounds {
		t.Errorf("pending polls = %d, want %d", node.pendingPolls, DefaultConfirmationRounds)
	}
}
