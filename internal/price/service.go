package price

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// FallbackPriceUSD is served when the oracle is unreachable and no cached
// quote exists. Documented behavior: price lookups degrade, they never
// hard-fail a valuation.
var FallbackPriceUSD = decimal.RequireFromString("0.34")

// Oracle fetches the native asset's USD quote from an external service.
type Oracle interface {
	FetchAlgoPrice(ctx context.Context) (decimal.Decimal, error)
}

// Service is the process-wide cached price state. A quote is served from
// cache while fresh, refreshed once stale, and replaced by the fallback
// constant only when no quote was ever obtained.
type Service struct {
	oracle     Oracle
	staleAfter time.Duration

	mu        sync.Mutex
	quote     decimal.Decimal
	fetchedAt time.Time
}

// NewService creates a price Service with the given staleness threshold.
func NewService(oracle Oracle, staleAfter time.Duration) *Service {
	return &Service{oracle: oracle, staleAfter: staleAfter}
}

// AlgoPrice returns the current USD quote. Never returns an error: a
// failed refresh falls back to the last known quote, or to
// FallbackPriceUSD when there is none.
func (s *Service) AlgoPrice(ctx context.Context) decimal.Decimal {
	s.mu.Lock()
	cached := s.quote
	fresh := !s.fetchedAt.IsZero() && time.Since(s.fetchedAt) < s.staleAfter
	s.mu.Unlock()

	if fresh {
		return cached
	}

	quote, err := s.oracle.FetchAlgoPrice(ctx)
	if err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.fetchedAt.IsZero() {
			slog.Warn("price refresh failed, serving stale quote", "error", err, "age", time.Since(s.fetchedAt))
			return s.quote
		}
		slog.Warn("price unavailable, using fallback", "error", err, "fallback", FallbackPriceUSD)
		return FallbackPriceUSD
	}

	s.mu.Lock()
	s.quote = quote
	s.fetchedAt = time.Now()
	s.mu.Unlock()

	return quote
}

// Refresh forces a fetch regardless of staleness. Used by the periodic
// refresh worker.
func (s *Service) Refresh(ctx context.Context) error {
	quote, err := s.oracle.FetchAlgoPrice(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.quote = quote
	s.fetchedAt = time.Now()
	s.mu.Unlock()

	return nil
}
