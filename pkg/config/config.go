package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the server process configuration. Values come from the
// environment, with an optional .env file for local runs.
type Config struct {
	ListenAddr   string `env:"TYR_LISTEN_ADDR" envDefault:":50051"`
	RingCapacity uint64 `env:"TYR_RING_CAPACITY" envDefault:"1048576"`

	KafkaBrokers []string `env:"TYR_KAFKA_BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	FillsTopic   string   `env:"TYR_FILLS_TOPIC" envDefault:"tyr.fills"`

	// Egress selects the fill delivery path: "direct" publishes straight to
	// Kafka, "journal" goes through the pebble journal and the broadcaster.
	Egress string `env:"TYR_EGRESS" envDefault:"journal"`

	JournalDir        string        `env:"TYR_JOURNAL_DIR" envDefault:"./journal"`
	BroadcastInterval time.Duration `env:"TYR_BROADCAST_INTERVAL" envDefault:"250ms"`
}

// Load reads .env if present, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.RingCapacity == 0 || cfg.RingCapacity&(cfg.RingCapacity-1) != 0 {
		return nil, fmt.Errorf("config: ring capacity %d is not a power of two", cfg.RingCapacity)
	}
	if cfg.Egress != "direct" && cfg.Egress != "journal" {
		return nil, fmt.Errorf("config: unknown egress mode %q", cfg.Egress)
	}
	return cfg, nil
}
