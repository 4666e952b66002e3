package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/gocql/gocql"
	"github.com/joho/godotenv"
)

const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"
	StoreScylla = "scylla"

	AuthSession  = "session"
	AuthJWT      = "jwt"
	AuthFirebase = "firebase"

	BackendLocal = "local"
	BackendGRPC  = "grpc"
)

// Config aggregates application configuration values loaded from environment variables.
type Config struct {
	Env      string `env:"APP_ENV" envDefault:"dev"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`
	GRPCAddr string `env:"GRPC_ADDR" envDefault:":9000"`

	StoreDriver string `env:"STORE_DRIVER" envDefault:"memory"`
	Mongo       Mongo
	Scylla      Scylla
	Redis       Redis
	Auth        Auth
	Kafka       Kafka
	Chat        Chat
	Gateway     Gateway
	RateLimit   RateLimit

	IdempotencyTTL   time.Duration `env:"IDEMP_TTL" envDefault:"168h"`
	ListingsFixtures string        `env:"LISTINGS_FIXTURES"`
}

type Mongo struct {
	URI string `env:"MONGO_URI"`
	DB  string `env:"MONGO_DB" envDefault:"marketchat"`
}

type Scylla struct {
	Hosts             []string      `env:"SCYLLA_HOSTS" envDefault:"localhost"`
	Keyspace          string        `env:"SCYLLA_KEYSPACE" envDefault:"marketchat"`
	Username          string        `env:"SCYLLA_USERNAME"`
	Password          string        `env:"SCYLLA_PASSWORD"`
	ConsistencyName   string        `env:"SCYLLA_CONSISTENCY" envDefault:"quorum"`
	Timeout           time.Duration `env:"SCYLLA_TIMEOUT" envDefault:"5s"`
	ReplicationFactor int           `env:"SCYLLA_REPLICATION_FACTOR" envDefault:"1"`
	PollInterval      time.Duration `env:"SCYLLA_POLL_INTERVAL" envDefault:"1s"`

	Consistency gocql.Consistency
}

type Redis struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type Auth struct {
	Provider          string        `env:"AUTH_PROVIDER" envDefault:"session"`
	SessionTTL        time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	JWTSecret         string        `env:"JWT_SECRET"`
	JWTIssuer         string        `env:"JWT_ISSUER"`
	FirebaseProjectID string        `env:"FIREBASE_PROJECT_ID"`
}

type Kafka struct {
	Brokers            []string        `env:"KAFKA_BROKERS"`
	TopicPrefix        string          `env:"KAFKA_TOPIC_PREFIX"`
	GroupID            string          `env:"KAFKA_GROUP_ID" envDefault:"marketchat"`
	OutboxPollInterval time.Duration   `env:"OUTBOX_POLL_INTERVAL" envDefault:"500ms"`
	RetryBackoff       []time.Duration `env:"RETRY_BACKOFF" envDefault:"1s,5s,30s"`
}

type Chat struct {
	MaxMessageLength int `env:"CHAT_MAX_MESSAGE_LENGTH" envDefault:"2000"`
	WindowSize       int `env:"CHAT_WINDOW_SIZE" envDefault:"200"`
	PageSize         int `env:"CHAT_PAGE_SIZE" envDefault:"50"`
	MaxPageSize      int `env:"CHAT_MAX_PAGE_SIZE" envDefault:"200"`
}

// Gateway selects where the HTTP gateway finds the chat core.
type Gateway struct {
	Backend     string        `env:"CHAT_BACKEND" envDefault:"local"`
	GRPCAddr    string        `env:"CHAT_GRPC_ADDR" envDefault:"localhost:9000"`
	GRPCTimeout time.Duration `env:"CHAT_GRPC_TIMEOUT" envDefault:"5s"`
}

type RateLimit struct {
	PerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"60"`
	Burst     int `env:"RATE_LIMIT_BURST" envDefault:"10"`
}

// LoadDotEnv reads .env into the process environment when the file exists.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	existing := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// Load parses configuration from the current environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	c.Env = strings.ToLower(strings.TrimSpace(c.Env))
	c.StoreDriver = strings.ToLower(strings.TrimSpace(c.StoreDriver))
	c.Auth.Provider = strings.ToLower(strings.TrimSpace(c.Auth.Provider))
	c.Gateway.Backend = strings.ToLower(strings.TrimSpace(c.Gateway.Backend))
	c.Scylla.Hosts = trimAll(c.Scylla.Hosts)
	c.Kafka.Brokers = trimAll(c.Kafka.Brokers)

	switch c.StoreDriver {
	case StoreMemory:
	case StoreMongo:
		if strings.TrimSpace(c.Mongo.URI) == "" {
			return errors.New("MONGO_URI is required for STORE_DRIVER=mongo")
		}
	case StoreScylla:
		if len(c.Scylla.Hosts) == 0 {
			return errors.New("SCYLLA_HOSTS is required for STORE_DRIVER=scylla")
		}
		if strings.TrimSpace(c.Scylla.Keyspace) == "" {
			return errors.New("SCYLLA_KEYSPACE is required for STORE_DRIVER=scylla")
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER: %s", c.StoreDriver)
	}

	consistency, err := parseConsistency(c.Scylla.ConsistencyName)
	if err != nil {
		return err
	}
	c.Scylla.Consistency = consistency
	if c.Scylla.ReplicationFactor < 1 {
		c.Scylla.ReplicationFactor = 1
	}

	switch c.Auth.Provider {
	case AuthSession:
	case AuthJWT:
		if c.Auth.JWTSecret == "" {
			return errors.New("JWT_SECRET is required for AUTH_PROVIDER=jwt")
		}
	case AuthFirebase:
		if c.Auth.FirebaseProjectID == "" {
			return errors.New("FIREBASE_PROJECT_ID is required for AUTH_PROVIDER=firebase")
		}
	default:
		return fmt.Errorf("unsupported AUTH_PROVIDER: %s", c.Auth.Provider)
	}

	switch c.Gateway.Backend {
	case BackendLocal, BackendGRPC:
	default:
		return fmt.Errorf("unsupported CHAT_BACKEND: %s", c.Gateway.Backend)
	}

	if c.Chat.PageSize > c.Chat.MaxPageSize {
		return fmt.Errorf("CHAT_PAGE_SIZE (%d) exceeds CHAT_MAX_PAGE_SIZE (%d)", c.Chat.PageSize, c.Chat.MaxPageSize)
	}
	for _, d := range c.Kafka.RetryBackoff {
		if d <= 0 {
			return fmt.Errorf("invalid RETRY_BACKOFF component %s", d)
		}
	}
	return nil
}

// Dev reports whether the process runs in a developer environment.
func (c Config) Dev() bool {
	return c.Env == "dev" || c.Env == "local"
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func parseConsistency(raw string) (gocql.Consistency, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "quorum":
		return gocql.Quorum, nil
	case "one":
		return gocql.One, nil
	case "local_quorum", "localquorum":
		return gocql.LocalQuorum, nil
	case "local_one":
		return gocql.LocalOne, nil
	case "all":
		return gocql.All, nil
	default:
		return gocql.Quorum, fmt.Errorf("unsupported SCYLLA_CONSISTENCY: %s", raw)
	}
}
