package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MicroAlgosPerAlgo is the fixed scale between the native major unit and
// its smallest indivisible denomination.
const MicroAlgosPerAlgo = 1_000_000

var microAlgoScale = decimal.NewFromInt(MicroAlgosPerAlgo)

// AlgosToMicroAlgos converts a major-unit amount to microalgos. The
// conversion must be exact: amounts with a fractional microalgo remainder
// are rejected rather than truncated.
func AlgosToMicroAlgos(algos decimal.Decimal) (uint64, error) {
	micro := algos.Mul(microAlgoScale)
	if !micro.IsInteger() {
		return 0, fmt.Errorf("amount %s does not convert exactly to microalgos", algos)
	}
	if micro.IsNegative() {
		return 0, fmt.Errorf("amount %s is negative", algos)
	}
	return uint64(micro.IntPart()), nil
}

// MicroAlgosToAlgos converts microalgos back to the major unit.
func MicroAlgosToAlgos(micro uint64) decimal.Decimal {
	return decimal.NewFromUint64(micro).Div(microAlgoScale)
}
