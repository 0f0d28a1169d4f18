package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":50051", cfg.ListenAddr)
	assert.Equal(t, uint64(1048576), cfg.RingCapacity)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "journal", cfg.Egress)
	assert.Equal(t, 250*time.Millisecond, cfg.BroadcastInterval)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TYR_LISTEN_ADDR", ":9000")
	t.Setenv("TYR_RING_CAPACITY", "4096")
	t.Setenv("TYR_KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("TYR_EGRESS", "direct")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, uint64(4096), cfg.RingCapacity)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "direct", cfg.Egress)
}

func TestRejectsBadRingCapacity(t *testing.T) {
	t.Setenv("TYR_RING_CAPACITY", "1000")
	_, err := Load()
	assert.Error(t, err)
}

func TestRejectsUnknownEgress(t *testing.T) {
	t.Setenv("TYR_EGRESS", "carrier-pigeon")
	_, err := Load()
	assert.Error(t, err)
}
