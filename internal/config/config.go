package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	AlgodURL            string
	IndexerURL          string
	CoinGeckoURL        string
	IPFSGatewayURL      string
	NodeRetryMax        int
	NodeRetryBaseDelay  time.Duration
	CoinGeckoDelay      time.Duration
	CoinGeckoRetryMax   int
	PriceStaleThreshold time.Duration
	PriceRefreshEvery   time.Duration
	ConfirmationRounds  uint64
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		AlgodURL:            envOrDefault("ALGOD_URL", "https://testnet-api.algonode.cloud"),
		IndexerURL:          envOrDefault("INDEXER_URL", "https://testnet-idx.algonode.cloud"),
		CoinGeckoURL:        envOrDefault("COINGECKO_URL", "https://api.coingecko.com/api/v3"),
		IPFSGatewayURL:      envOrDefault("IPFS_GATEWAY_URL", "https://ipfs.io/ipfs/"),
		NodeRetryMax:        envOrDefaultInt("NODE_RETRY_MAX", 5),
		NodeRetryBaseDelay:  envOrDefaultDuration("NODE_RETRY_BASE_DELAY", 2*time.Second),
		CoinGeckoDelay:      envOrDefaultDuration("COINGECKO_DELAY", 6*time.Second),
		CoinGeckoRetryMax:   envOrDefaultInt("COINGECKO_RETRY_MAX", 5),
		PriceStaleThreshold: envOrDefaultDuration("PRICE_STALE_THRESHOLD", 30*time.Second),
		PriceRefreshEvery:   envOrDefaultDuration("PRICE_REFRESH_INTERVAL", time.Minute),
		ConfirmationRounds:  uint64(envOrDefaultInt("CONFIRMATION_ROUNDS", 4)),
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envOrDefaultInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			slog.Warn("invalid integer env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return n
	}
	return defaultVal
}

func envOrDefaultDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return d
	}
	return defaultVal
}
