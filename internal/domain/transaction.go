package domain

import "github.com/google/uuid"

// TxKind discriminates the transaction variants this client can build.
type TxKind string

const (
	TxKindPayment       TxKind = "payment"
	TxKindAssetTransfer TxKind = "asset-transfer"
	TxKindAssetOptIn    TxKind = "asset-opt-in"
)

// ValidityWindowRounds is the number of rounds a built transaction stays
// valid after the fee-parameter snapshot's current round.
const ValidityWindowRounds = 1000

// FeeParameters is the network-supplied snapshot required to build a
// transaction. Fetched fresh per build and embedded into the result;
// the transaction is only valid within [FirstValid, LastValid].
type FeeParameters struct {
	Fee         uint64 `json:"fee"`
	MinFee      uint64 `json:"minFee"`
	FirstValid  uint64 `json:"firstValid"`
	LastValid   uint64 `json:"lastValid"`
	GenesisID   string `json:"genesisId"`
	GenesisHash string `json:"genesisHash"`
}

// Transaction is the tagged variant over the three buildable transaction
// shapes. Each variant is its own struct so a wrong-field-for-this-kind
// state cannot be represented.
type Transaction interface {
	Kind() TxKind
	Sender() string
	Params() FeeParameters
}

// PaymentTx moves native currency from From to To.
type PaymentTx struct {
	From       string        `json:"from"`
	To         string        `json:"to"`
	MicroAlgos uint64        `json:"microAlgos"`
	Note       []byte        `json:"note,omitempty"`
	Fee        FeeParameters `json:"fee"`
}

func (t PaymentTx) Kind() TxKind          { return TxKindPayment }
func (t PaymentTx) Sender() string        { return t.From }
func (t PaymentTx) Params() FeeParameters { return t.Fee }

// AssetTransferTx moves Amount base units of AssetID from From to To.
// An opt-in is the same wire shape with To == From and Amount == 0; the
// OptIn flag records the caller's intent for reporting.
type AssetTransferTx struct {
	From    string        `json:"from"`
	To      string        `json:"to"`
	AssetID uint64        `json:"assetId"`
	Amount  uint64        `json:"amount"`
	OptIn   bool          `json:"optIn,omitempty"`
	Fee     FeeParameters `json:"fee"`
}

func (t AssetTransferTx) Kind() TxKind {
	if t.OptIn {
		return TxKindAssetOptIn
	}
	return TxKindAssetTransfer
}
func (t AssetTransferTx) Sender() string        { return t.From }
func (t AssetTransferTx) Params() FeeParameters { return t.Fee }

// SignedTransaction is the opaque signed payload plus the logical identity
// of the build it originated from. Produced exactly once per build; a
// declined or expired attempt requires a fresh build, never a re-sign.
type SignedTransaction struct {
	ID     uuid.UUID `json:"id"`
	Kind   TxKind    `json:"kind"`
	Signer string    `json:"signer"`
	Blob   []byte    `json:"blob"`
}

// SubmissionState is the terminal state of a submit-and-confirm attempt.
type SubmissionState string

const (
	// StateConfirmed: the transaction was observed in a block.
	StateConfirmed SubmissionState = "confirmed"
	// StateExpired: the round budget elapsed without observing inclusion.
	// This is a liveness report, not proof of failure — the transaction
	// may still confirm later and the caller should re-query before
	// assuming the funds did or did not move.
	StateExpired SubmissionState = "expired"
	// StateRejected: the node refused the transaction at protocol level.
	// Terminal; the caller must rebuild with fresh fee parameters.
	StateRejected SubmissionState = "rejected"
)

// SubmissionResult reports the outcome of one submit-and-confirm attempt.
type SubmissionResult struct {
	TxID           string          `json:"txId"`
	Kind           TxKind          `json:"kind"`
	State          SubmissionState `json:"state"`
	ConfirmedRound uint64          `json:"confirmedRound,omitempty"`
	Reason         string          `json:"reason,omitempty"`
}
