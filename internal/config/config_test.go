package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// Clear any env vars that might affect defaults
	for _, key := range []string{"ALGOD_URL", "INDEXER_URL", "COINGECKO_URL", "IPFS_GATEWAY_URL", "NODE_RETRY_MAX"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()

	if cfg.AlgodURL != "https://testnet-api.algonode.cloud" {
		t.Errorf("AlgodURL = %q, want default", cfg.AlgodURL)
	}
	if cfg.IndexerURL != "https://testnet-idx.algonode.cloud" {
		t.Errorf("IndexerURL = %q, want default", cfg.IndexerURL)
	}
	if cfg.CoinGeckoURL != "https://api.coingecko.com/api/v3" {
		t.Errorf("CoinGeckoURL = %q, want default", cfg.CoinGeckoURL)
	}
	if cfg.IPFSGatewayURL != "https://ipfs.io/ipfs/" {
		t.Errorf("IPFSGatewayURL = %q, want default", cfg.IPFSGatewayURL)
	}
	if cfg.NodeRetryMax != 5 {
		t.Errorf("NodeRetryMax = %d, want 5", cfg.NodeRetryMax)
	}
	if cfg.NodeRetryBaseDelay != 2*time.Second {
		t.Errorf("NodeRetryBaseDelay = %v, want 2s", cfg.NodeRetryBaseDelay)
	}
	if cfg.ConfirmationRounds != 4 {
		t.Errorf("ConfirmationRounds = %d, want 4", cfg.ConfirmationRounds)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ALGOD_URL", "https://mainnet-api.algonode.cloud")
	t.Setenv("NODE_RETRY_MAX", "10")
	t.Setenv("NODE_RETRY_BASE_DELAY", "5s")
	t.Setenv("CONFIRMATION_ROUNDS", "8")

	cfg := Load()

	if cfg.AlgodURL != "https://mainnet-api.algonode.cloud" {
		t.Errorf("AlgodURL = %q, want override", cfg.AlgodURL)
	}
	if cfg.NodeRetryMax != 10 {
		t.Errorf("NodeRetryMax = %d, want 10", cfg.NodeRetryMax)
	}
	if cfg.NodeRetryBaseDelay != 5*time.Second {
		t.Errorf("NodeRetryBaseDelay = %v, want 5s", cfg.NodeRetryBaseDelay)
	}
	if cfg.ConfirmationRounds != 8 {
		t.Errorf("ConfirmationRounds = %d, want 8", cfg.ConfirmationRounds)
	}
}

func TestLoadInvalidEnvFallsBackToDefault(t *testing.T) {
	t.Setenv("NODE_RETRY_MAX", "not-a-number")
	t.Setenv("NODE_RETRY_BASE_DELAY", "invalid-duration")

	cfg := Load()

	if cfg.NodeRetryMax != 5 {
		t.Errorf("NodeRetryMax = %d, want default 5 on invalid input", cfg.NodeRetryMax)
	}
	if cfg.NodeRetryBaseDelay != 2*time.Second {
		t.Errorf("NodeRetryBaseDelay = %v, want default 2s on invalid input", cfg.NodeRetryBaseDelay)
	}
}
