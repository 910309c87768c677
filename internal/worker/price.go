package worker

import (
	"context"
	"log/slog"
	"time"
)

// PriceRefresher defines the interface for refreshing the cached price.
type PriceRefresher interface {
	Refresh(ctx context.Context) error
}

// PriceWorker periodically refreshes the external price quote so the
// cached state stays within its staleness threshold.
type PriceWorker struct {
	refresher PriceRefresher
	interval  time.Duration
}

// NewPriceWorker creates a new PriceWorker.
func NewPriceWorker(refresher PriceRefresher, interval time.Duration) *PriceWorker {
	return &PriceWorker{
		refresher: refresher,
		interval:  interval,
	}
}

// Run starts the refresh loop. It blocks until the context is cancelled.
func (w *PriceWorker) Run(ctx context.Context) {
	slog.Info("PriceWorker: starting")

	// Refresh immediately on startup
	if err := w.refresher.Refresh(ctx); err != nil {
		slog.Error("PriceWorker: initial refresh failed", "error", err)
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("PriceWorker: shutting down")
			return
		case <-ticker.C:
			if err := w.refresher.Refresh(ctx); err != nil {
				slog.Error("PriceWorker: refresh failed", "error", err)
			}
		}
	}
}
