package signing

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/algoport/algoport/internal/domain"
	"github.com/algoport/algoport/internal/session"
)

// ErrNotConnected indicates no signer identity is available. The caller
// must (re)connect the wallet before signing.
var ErrNotConnected = errors.New("no wallet connected")

// ErrSenderMismatch indicates the transaction names a sender other than
// the connected account. The signer is never consulted for such a
// transaction.
var ErrSenderMismatch = errors.New("transaction sender does not match connected account")

// SigningError wraps an explicit signer rejection or cancellation. It is
// terminal for this transaction instance: a declined transaction must be
// rebuilt fresh, never re-signed.
type SigningError struct {
	Kind domain.TxKind
	Err  error
}

func (e *SigningError) Error() string {
	return fmt.Sprintf("signing %s transaction: %v", e.Kind, e.Err)
}

func (e *SigningError) Unwrap() error { return e.Err }

// Signer is the external signing capability. The key never leaves it;
// this package only sees the resulting signed bytes or a rejection.
type Signer interface {
	SignTransaction(ctx context.Context, txn domain.Transaction, signerAddress string) ([]byte, error)
}

// Coordinator bridges an unsigned transaction to the external signer,
// packaging it with the connected identity as the required signer.
type Coordinator struct {
	session *session.Session
	signer  Signer
}

// NewCoordinator creates a signing Coordinator.
func NewCoordinator(sess *session.Session, signer Signer) *Coordinator {
	return &Coordinator{session: sess, signer: signer}
}

// Sign delegates the transaction to the external signer and returns the
// signed payload tagged with a fresh logical identity. A signer decline
// surfaces as *SigningError and is never retried here.
func (c *Coordinator) Sign(ctx context.Context, txn domain.Transaction) (domain.SignedTransaction, error) {
	address, ok := c.session.Address()
	if !ok {
		return domain.SignedTransaction{}, ErrNotConnected
	}

	if sender := txn.Sender(); sender != address {
		return domain.SignedTransaction{}, fmt.Errorf(
			"%w: sender %s, connected %s", ErrSenderMismatch, sender, address)
	}

	blob, err := c.signer.SignTransaction(ctx, txn, address)
	if err != nil {
		return domain.SignedTransaction{}, &SigningError{Kind: txn.Kind(), Err: err}
	}

	return domain.SignedTransaction{
		ID:     uuid.New(),
		Kind:   txn.Kind(),
		Signer: address,
		Blob:   blob,
	}, nil
}
