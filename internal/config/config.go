package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreMemory   = "memory"
)

// Config is the runtime configuration of the auction service, read from the
// environment. A .env file is loaded by the entrypoints before Load runs.
type Config struct {
	Port        int
	StoreDriver string

	AuctionsTable    string
	ProposalsTable   string
	ItemsTable       string
	AWSRegion        string
	DynamoDBEndpoint string

	// ItemsSeedFile is a JSON list of swap items loaded into the memory store.
	ItemsSeedFile string

	NATSURL      string
	LedgerStream string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AlertPostgresDSN string
	AlertNATSSubject string
	AlertHistorySize int

	SweeperEnabled bool
	SweepInterval  time.Duration

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool
}

// Load reads the configuration. Malformed numbers, booleans and durations are
// reported instead of silently replaced by defaults.
func Load() (Config, error) {
	cfg := Config{
		StoreDriver:            strings.ToLower(getenvDefault("STORE_DRIVER", StoreDynamoDB)),
		AuctionsTable:          getenvDefault("AUCTIONS_TABLE", "auctions"),
		ProposalsTable:         getenvDefault("PROPOSALS_TABLE", "auction_proposals"),
		ItemsTable:             getenvDefault("ITEMS_TABLE", "bookings"),
		AWSRegion:              getenvDefault("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint:       os.Getenv("DYNAMODB_ENDPOINT"),
		ItemsSeedFile:          os.Getenv("ITEMS_SEED_FILE"),
		NATSURL:                os.Getenv("NATS_URL"),
		LedgerStream:           getenvDefault("LEDGER_STREAM", "AUCTION_LEDGER"),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		RedisPassword:          os.Getenv("REDIS_PASSWORD"),
		AlertPostgresDSN:       os.Getenv("ALERT_POSTGRES_DSN"),
		AlertNATSSubject:       getenvDefault("ALERT_NATS_SUBJECT", "auction.alerts.rollback"),
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
	}

	var err error
	if cfg.Port, err = getenvInt("PORT", 8080); err != nil {
		return Config{}, err
	}
	if cfg.RedisDB, err = getenvInt("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.AlertHistorySize, err = getenvInt("ALERT_HISTORY_SIZE", 100); err != nil {
		return Config{}, err
	}
	if cfg.SweeperEnabled, err = getenvBool("SWEEPER_ENABLED", true); err != nil {
		return Config{}, err
	}
	if cfg.PaymentGatewayMock, err = getenvBool("PAYMENT_GATEWAY_MOCK", false); err != nil {
		return Config{}, err
	}
	if cfg.SweepInterval, err = getenvDuration("SWEEP_INTERVAL", time.Minute); err != nil {
		return Config{}, err
	}

	if cfg.StoreDriver != StoreDynamoDB && cfg.StoreDriver != StoreMemory {
		return Config{}, fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StoreDynamoDB, StoreMemory, cfg.StoreDriver)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("PORT out of range: %d", cfg.Port)
	}
	if cfg.AlertHistorySize <= 0 {
		return Config{}, fmt.Errorf("ALERT_HISTORY_SIZE must be positive, got %d", cfg.AlertHistorySize)
	}
	if cfg.SweepInterval <= 0 {
		return Config{}, fmt.Errorf("SWEEP_INTERVAL must be positive, got %s", cfg.SweepInterval)
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func getenvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}
