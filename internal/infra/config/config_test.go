package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreMemory, cfg.StoreDriver)
	assert.Equal(t, AuthSession, cfg.Auth.Provider)
	assert.Equal(t, BackendLocal, cfg.Gateway.Backend)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 2000, cfg.Chat.MaxMessageLength)
	assert.Equal(t, 200, cfg.Chat.WindowSize)
	assert.Equal(t, 50, cfg.Chat.PageSize)
	assert.Equal(t, []time.Duration{time.Second, 5 * time.Second, 30 * time.Second}, cfg.Kafka.RetryBackoff)
	assert.Equal(t, gocql.Quorum, cfg.Scylla.Consistency)
	assert.True(t, cfg.Dev())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "Prod")
	t.Setenv("STORE_DRIVER", "scylla")
	t.Setenv("SCYLLA_HOSTS", "10.0.0.1, 10.0.0.2 ,")
	t.Setenv("SCYLLA_CONSISTENCY", "local_quorum")
	t.Setenv("SCYLLA_REPLICATION_FACTOR", "0")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("AUTH_PROVIDER", "jwt")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("CHAT_BACKEND", "grpc")
	t.Setenv("CHAT_PAGE_SIZE", "20")
	t.Setenv("RETRY_BACKOFF", "2s,10s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.Dev())
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.Scylla.Hosts)
	assert.Equal(t, gocql.LocalQuorum, cfg.Scylla.Consistency)
	assert.Equal(t, 1, cfg.Scylla.ReplicationFactor)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, BackendGRPC, cfg.Gateway.Backend)
	assert.Equal(t, 20, cfg.Chat.PageSize)
	assert.Equal(t, []time.Duration{2 * time.Second, 10 * time.Second}, cfg.Kafka.RetryBackoff)
}

func TestLoadRejectsInconsistentSettings(t *testing.T) {
	cases := map[string]map[string]string{
		"mongo without uri":   {"STORE_DRIVER": "mongo"},
		"unknown driver":      {"STORE_DRIVER": "sqlite"},
		"jwt without secret":  {"AUTH_PROVIDER": "jwt"},
		"firebase no project": {"AUTH_PROVIDER": "firebase"},
		"unknown backend":     {"CHAT_BACKEND": "carrier-pigeon"},
		"bad consistency":     {"SCYLLA_CONSISTENCY": "eventually"},
		"page over max":       {"CHAT_PAGE_SIZE": "500"},
		"bad duration":        {"SESSION_TTL": "soon"},
	}
	for name, vars := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range vars {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("CHAT_WINDOW_SIZE=42\n"), 0o600))
	t.Setenv("CHAT_WINDOW_SIZE", "")
	require.NoError(t, os.Unsetenv("CHAT_WINDOW_SIZE"))

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))
	require.NoError(t, LoadDotEnv(path))
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Chat.WindowSize)
}
