package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAlgosToMicroAlgosExact(t *testing.T) {
	tests := []struct {
		name  string
		algos string
		want  uint64
	}{
		{"one algo", "1", 1_000_000},
		{"minimum fee amount", "0.001", 1000},
		{"single microalgo", "0.000001", 1},
		{"zero", "0", 0},
		{"large", "12345.678901", 12_345_678_901},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AlgosToMicroAlgos(decimal.RequireFromString(tt.algos))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("AlgosToMicroAlgos(%s) = %d, want %d", tt.algos, got, tt.want)
			}
		})
	}
}

func TestAlgosToMicroAlgosRejectsInexact(t *testing.T) {
	for _, amount := range []string{"0.0000001", "1.0000005", "0.00000000001"} {
		if _, err := AlgosToMicroAlgos(decimal.RequireFromString(amount)); err == nil {
			t.Errorf("AlgosToMicroAlgos(%s): expected error, got nil", amount)
		}
	}
}

func TestAlgosToMicroAlgosRejectsNegative(t *testing.T) {
	if _, err := AlgosToMicroAlgos(decimal.RequireFromString("-1")); err == nil {
		t.Error("expected error for negative amount, got nil")
	}
}

func TestMicroAlgoConversionRoundTrip(t *testing.T) {
	for _, amount := range []string{"0.000001", "0.001", "1", "3.141592", "999999.999999"} {
		d := decimal.RequireFromString(amount)
		micro, err := AlgosToMicroAlgos(d)
		if err != nil {
			t.Fatalf("AlgosToMicroAlgos(%s): %v", amount, err)
		}
		back := MicroAlgosToAlgos(micro)
		if !back.Equal(d) {
			t.Errorf("round trip %s -> %d -> %s, want original", amount, micro, back)
		}
	}
}
